// Package erroragg groups error-level logs by error type.
package erroragg

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Egor213/TerraTrack/internal/domain"
)

const (
	maxLogIds     = 10
	maxTypeLength = 50
	unknownID     = "unknown"
)

type pattern struct {
	count     int
	logIds    []string
	firstSeen string
	lastSeen  string
}

type Aggregator struct{}

func New() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) ProcessLogs(_ context.Context, req domain.PluginRequest) (domain.PluginResult, error) {
	patterns := make(map[string]*pattern)

	for _, l := range req.Logs {
		if !strings.EqualFold(l.Level, "error") {
			continue
		}

		key := ErrorType(l.Message)
		p, ok := patterns[key]
		if !ok {
			p = &pattern{firstSeen: l.Timestamp}
			patterns[key] = p
		}
		p.count++
		p.lastSeen = l.Timestamp

		id := l.RequestID
		if id == "" {
			id = unknownID
		}
		if len(p.logIds) < maxLogIds {
			p.logIds = append(p.logIds, id)
		}
	}

	keys := make([]string, 0, len(patterns))
	total := 0
	for k, p := range patterns {
		keys = append(keys, k)
		total += p.count
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := patterns[keys[i]].count, patterns[keys[j]].count
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})

	results := make([]domain.PluginItem, 0, len(keys))
	for _, k := range keys {
		p := patterns[k]
		results = append(results, domain.PluginItem{
			Key:    k,
			Value:  fmt.Sprintf("Count: %d, First: %s, Last: %s", p.count, p.firstSeen, p.lastSeen),
			Count:  p.count,
			LogIds: p.logIds,
		})
	}

	summary := fmt.Sprintf("Total errors: %d, Unique error types: %d", total, len(patterns))
	if len(results) > 0 {
		summary += fmt.Sprintf(", Most common: '%s' (%d times)", results[0].Key, results[0].Count)
	}

	return domain.PluginResult{Results: results, Summary: summary}, nil
}

// ErrorType is the text before the first colon, else the first line, else
// the first 50 characters of message.
func ErrorType(message string) string {
	if before, _, ok := strings.Cut(message, ":"); ok {
		return strings.TrimSpace(before)
	}
	if before, _, ok := strings.Cut(message, "\n"); ok {
		return strings.TrimSpace(before)
	}
	r := []rune(message)
	if len(r) > maxTypeLength {
		r = r[:maxTypeLength]
	}
	return strings.TrimSpace(string(r))
}
