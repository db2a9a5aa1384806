package catalog

import "github.com/aretw0/crossroads/pkg/dsl"

// CarName is the registry name of the car troubleshooting guide.
const CarName = "car"

// CarTable is the automotive troubleshooting guide: yes/no questions about a car
// that will not start, ending in a suggested repair.
var CarTable = dsl.Table{
	Name: CarName,
	Root: "silent",
	Nodes: []dsl.NodeSpec{
		{Key: "silent", Text: "Is the car silent when you turn the key?"},
		{Key: "corroded", Text: "Are the battery terminals corroded?"},
		{Key: "clicking", Text: "Does the car make a clicking noise?"},
		{Key: "clean-terminals", Text: "Clean terminals and try starting again."},
		{Key: "replace-cables", Text: "Replace cables and try again."},
		{Key: "replace-battery", Text: "Replace the battery."},
		{Key: "cranks", Text: "Does the car crank up but fail to start?"},
		{Key: "spark-plugs", Text: "Check spark plug connections."},
		{Key: "starts-and-dies", Text: "Does the engine start and then die?"},
		{Key: "fuel-injection", Text: "Does your car have fuel injection?"},
		{Key: "mechanic", Text: "No further questions. Please consult a mechanic."},
		{Key: "choke", Text: "Check to ensure the choke is opening and closing."},
		{Key: "service", Text: "Get it in for service."},
	},
	Edges: []dsl.EdgeSpec{
		{From: "silent", To: "corroded", Label: true},
		{From: "silent", To: "clicking", Label: false},
		{From: "corroded", To: "clean-terminals", Label: true},
		{From: "corroded", To: "replace-cables", Label: false},
		{From: "clicking", To: "replace-battery", Label: true},
		{From: "clicking", To: "cranks", Label: false},
		{From: "cranks", To: "spark-plugs", Label: true},
		{From: "cranks", To: "starts-and-dies", Label: false},
		{From: "starts-and-dies", To: "fuel-injection", Label: true},
		{From: "starts-and-dies", To: "mechanic", Label: false},
		{From: "fuel-injection", To: "service", Label: true},
		{From: "fuel-injection", To: "choke", Label: false},
	},
}
