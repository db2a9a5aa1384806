// Package catalog holds the decision trees compiled into the crossroads binary.
//
// Each entry is a dsl.Table literal, so the topology reads as data and is
// validated the same way as trees loaded from files.
package catalog
