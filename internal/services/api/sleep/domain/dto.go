package domain

// Timestamps arrive as RFC3339 strings so absent and unparseable values can
// both surface as field-level validation failures rather than decode errors

// CreateInput opens a new sleep interval
type CreateInput struct {
	SleepAt string `json:"sleep_at" validate:"required" example:"2026-08-30T22:15:00Z"`
}

// SetWakeInput closes (or re-closes) an interval. Clearing is not supported:
// the field is required and must parse
type SetWakeInput struct {
	WakeAt string `json:"wake_at" validate:"required" example:"2026-08-31T06:15:00Z"`
}

// CreateResp echoes the stored interval opening
type CreateResp struct {
	ID      string `json:"id"`
	SleepAt string `json:"sleep_at"`
}
