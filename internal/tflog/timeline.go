package tflog

import (
	"sort"

	"github.com/Egor213/TerraTrack/internal/domain"
)

// Aggregate groups records by tf_req_id into timelines ordered by start
// timestamp. Timelines with no known start come first; equal starts keep the
// order in which their request ids were first seen. Timestamps are compared
// as strings, which matches chronological order for RFC 3339 values.
func Aggregate(records []domain.Record) []domain.RequestTimeline {
	byID := make(map[string]int)
	timelines := []domain.RequestTimeline{}

	for _, rec := range records {
		id := rec.RequestID()
		if id == "" {
			continue
		}

		i, ok := byID[id]
		if !ok {
			i = len(timelines)
			byID[id] = i
			timelines = append(timelines, domain.RequestTimeline{RequestID: id})
		}
		t := &timelines[i]

		if ts := rec.Timestamp(); ts != "" {
			if t.StartTimestamp == "" || ts < t.StartTimestamp {
				t.StartTimestamp = ts
			}
			if t.EndTimestamp == "" || ts > t.EndTimestamp {
				t.EndTimestamp = ts
			}
		}
		t.RecordCount++

		if t.RPC == "" {
			t.RPC = rec.RPC()
		}
		if t.ResourceType == "" {
			t.ResourceType = rec.ResourceType()
		}
	}

	sort.SliceStable(timelines, func(a, b int) bool {
		sa, sb := timelines[a].StartTimestamp, timelines[b].StartTimestamp
		if sa == "" || sb == "" {
			return sa == "" && sb != ""
		}
		return sa < sb
	})
	return timelines
}
