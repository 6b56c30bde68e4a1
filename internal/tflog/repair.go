package tflog

import (
	"strings"

	"github.com/Egor213/TerraTrack/internal/domain"
)

const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Repair backfills missing severity and timestamp fields and reports how many
// records were changed. Input records are never modified; changed records are
// copies.
func Repair(records []domain.Record) ([]domain.Record, int) {
	out := make([]domain.Record, len(records))
	carry := ""
	fixed := 0

	for i, rec := range records {
		var changed bool
		out[i], carry, changed = repairRecord(carry, rec)
		if changed {
			fixed++
		}
	}
	return out, fixed
}

// repairRecord is one step of the repair fold: it takes the last explicit
// timestamp seen so far and returns the repaired record with the next carry.
// A backfilled timestamp never becomes the carry.
func repairRecord(carry string, rec domain.Record) (domain.Record, string, bool) {
	level := rec.Level() == "" && guessLevel(rec.Message()) != ""
	ts := rec.Timestamp()
	stamp := ts == "" && carry != ""

	if ts != "" {
		carry = ts
	}
	if !level && !stamp {
		return rec, carry, false
	}

	levelKey, tsKey := domain.AltKeyLevel, domain.AltKeyTimestamp
	if rec.NativeKeys() {
		levelKey, tsKey = domain.KeyLevel, domain.KeyTimestamp
	}

	repaired := rec.Clone()
	if level {
		repaired[levelKey] = guessLevel(rec.Message())
	}
	if stamp {
		repaired[tsKey] = carry
	}
	return repaired, carry, true
}

func guessLevel(message string) string {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, LevelError):
		return LevelError
	case strings.Contains(msg, LevelWarning):
		return LevelWarning
	}
	return ""
}
