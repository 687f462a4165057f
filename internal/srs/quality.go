// Package srs implements the SM-2 style grading used to schedule word reviews.
// Everything here is pure: callers own persistence and retry semantics.
package srs

// Response time thresholds (milliseconds) for the quality mapping
const (
	fastCorrectMs = 1500
	slowCorrectMs = 4000
	fastWrongMs   = 2000
	slowWrongMs   = 5000
)

// CalculateQuality converts a boolean answer plus response latency into the
// 0-5 recall quality score consumed by the SM-2 recurrence.
//
// Correct answers score in the 3-5 band, incorrect answers in the 0-2 band.
// Within each band, faster responses score higher: correctness dominates speed.
func CalculateQuality(isCorrect bool, responseTimeMs int) int {
	if isCorrect {
		switch {
		case responseTimeMs < fastCorrectMs:
			return 5
		case responseTimeMs < slowCorrectMs:
			return 4
		default:
			return 3
		}
	}

	switch {
	case responseTimeMs < fastWrongMs:
		return 2
	case responseTimeMs < slowWrongMs:
		return 1
	default:
		return 0
	}
}
