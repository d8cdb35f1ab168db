// Package services contains server-side business logic: credential checks and
// token issuance, the detection batch-ingestion pipeline, and the bounded
// list/create operations behind each endpoint.
package services

// Per-entity list bounds. Callers may request any limit; services fall back
// to the default for non-positive values and clamp to the ceiling otherwise.
const (
	EventListDefault = 100
	EventListMax     = 500

	DetectionListDefault = 200
	DetectionListMax     = 1000

	ObservationListDefault = 100
	ObservationListMax     = 500

	QuestionnaireListDefault = 100
	QuestionnaireListMax     = 500
)

// clampLimit bounds a caller-supplied limit: non-positive values (including
// unparseable query strings reported as 0) fall back to def, values above max
// are clamped to max. The result is never zero or negative.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
