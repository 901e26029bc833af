package clock

import (
	"time"

	model "agri-auction/internal/models"
)

// Normalize converts an externally supplied instant to the engine's reference
// timezone (UTC). Idempotent: normalizing an already-normalized instant is a
// no-op. All instants must pass through here once at ingestion; the phase
// evaluator itself never converts timezones.
func Normalize(t time.Time) time.Time {
	return t.UTC()
}

// PhaseAt maps an instant onto the auction window. The start boundary is
// inclusive of ACTIVE, the end boundary exclusive: an auction ends the instant
// it reaches its end time. Pure, no side effects.
func PhaseAt(now, start, end time.Time) model.Phase {
	if now.Before(start) {
		return model.PhaseNotStarted
	}
	if now.Before(end) {
		return model.PhaseActive
	}
	return model.PhaseEnded
}

// Remaining returns the time left until end, clamped to zero once now >= end.
func Remaining(now, end time.Time) time.Duration {
	if !now.Before(end) {
		return 0
	}
	return end.Sub(now)
}

// UntilStart returns the time until start, clamped to zero once now >= start.
func UntilStart(now, start time.Time) time.Duration {
	if !now.Before(start) {
		return 0
	}
	return start.Sub(now)
}
