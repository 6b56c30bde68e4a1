package tflog

import (
	"fmt"
	"strings"

	"github.com/Egor213/TerraTrack/internal/domain"
)

type phaseMarkers struct {
	startPhrases []string
	endType      string
	endPhrases   []string
}

// markersFor panics on a kind it does not know, so a new SectionKind fails
// the marker tests until its phrases are added here.
func markersFor(kind domain.SectionKind) phaseMarkers {
	switch kind {
	case domain.SectionPlan:
		return phaseMarkers{
			startPhrases: []string{"backend/local: starting Plan operation"},
			endType:      "change_summary",
			endPhrases:   []string{"Plan:"},
		}
	case domain.SectionApply:
		return phaseMarkers{
			startPhrases: []string{"backend/local: starting Apply operation"},
			endType:      "apply_complete",
			endPhrases:   []string{"Apply complete!"},
		}
	case domain.SectionInit:
		return phaseMarkers{
			startPhrases: []string{"Initializing the backend", "Initializing provider plugins"},
			endPhrases:   []string{"Terraform has been successfully initialized"},
		}
	}
	panic(fmt.Sprintf("tflog: no markers for %v", kind))
}

// detectMarkers reports the phase a record opens or closes. A record never
// yields both: start markers take precedence.
func detectMarkers(rec domain.Record) (start, end domain.SectionKind) {
	msg := rec.Message()

	for _, kind := range domain.SectionKinds {
		if containsAny(msg, markersFor(kind).startPhrases) {
			return kind, 0
		}
	}

	typ := rec.Type()
	for _, kind := range domain.SectionKinds {
		m := markersFor(kind)
		if (m.endType != "" && typ == m.endType) || containsAny(msg, m.endPhrases) {
			return 0, kind
		}
	}
	return 0, 0
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
