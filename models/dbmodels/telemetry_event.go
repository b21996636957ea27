package dbmodels

// TelemetryEvent is an append-only client telemetry row.
// Data holds the raw JSON payload as sent by the client, if any.
type TelemetryEvent struct {
	Base
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Data      string `json:"data,omitempty"`
}
