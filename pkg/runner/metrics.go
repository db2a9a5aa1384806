package runner

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts session activity in a private Prometheus registry.
// Sessions are short-lived, so the registry is written out as a textfile
// (node-exporter textfile collector format) rather than served.
type Metrics struct {
	Registry *prometheus.Registry

	nodeVisits *prometheus.CounterVec
	answers    *prometheus.CounterVec
	reprompts  *prometheus.CounterVec
	slots      *prometheus.CounterVec
	completed  *prometheus.CounterVec
}

// NewMetrics creates and registers the session counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		nodeVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossroads_node_visits_total",
			Help: "Total number of node visits",
		}, []string{"tree", "node"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossroads_answers_total",
			Help: "Answers applied, by value",
		}, []string{"tree", "answer"}),
		reprompts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossroads_reprompts_total",
			Help: "Lines rejected and asked again",
		}, []string{"tree", "kind"}),
		slots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossroads_slots_filled_total",
			Help: "Fill-in words collected, by placeholder",
		}, []string{"tree", "slot"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossroads_sessions_completed_total",
			Help: "Sessions that reached a leaf, by leaf",
		}, []string{"tree", "leaf"}),
	}
	m.Registry.MustRegister(m.nodeVisits, m.answers, m.reprompts, m.slots, m.completed)
	return m
}

// Hooks returns lifecycle hooks that count visits and answers for tree.
func (m *Metrics) Hooks(tree string) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			m.nodeVisits.WithLabelValues(tree, eventNode(e)).Inc()
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			m.answers.WithLabelValues(tree, strconv.FormatBool(e.Answer)).Inc()
		},
	}
}

// WriteFile writes every counter to path in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func (m *Metrics) reprompt(tree string, kind PromptKind) {
	if m == nil {
		return
	}
	m.reprompts.WithLabelValues(tree, string(kind)).Inc()
}

func (m *Metrics) slotFilled(tree, slot string) {
	if m == nil {
		return
	}
	m.slots.WithLabelValues(tree, slot).Inc()
}

func (m *Metrics) sessionCompleted(tree, leaf string) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(tree, leaf).Inc()
}

func eventNode(e *domain.NodeEvent) string {
	if e.Key != "" {
		return e.Key
	}
	return "#" + strconv.Itoa(int(e.NodeID))
}
