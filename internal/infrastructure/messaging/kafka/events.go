// Package kafka publishes run lifecycle events so downstream consumers
// (dashboards, alerting) can react to finished analyses without polling the
// result store.
package kafka

import "time"

// EventTypeRunCompleted labels a finished analysis run.
const EventTypeRunCompleted = "analysis.run.completed"

// RunCompletedEvent is emitted after a pipeline run has been persisted.
type RunCompletedEvent struct {
	Type          string    `json:"type"`
	RunID         string    `json:"run_id"`
	Domain        string    `json:"domain"`
	Status        string    `json:"status"`
	InputRows     int       `json:"input_rows"`
	Matched       int       `json:"matched"`
	Authoritative bool      `json:"authoritative"`
	CompletedAt   time.Time `json:"completed_at"`
}
