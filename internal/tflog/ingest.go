// Package tflog turns raw Terraform JSON logs into repaired records, phase
// sections and per-request timelines. Every function here is pure: no I/O,
// no shared state, safe to call concurrently on distinct inputs.
package tflog

import (
	"encoding/json"
	"strings"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/valyala/fastjson"
)

// Ingest parses text as a JSON array of objects, a single object, or, if the
// whole document is not valid JSON, as newline-delimited objects. Lines and
// array elements that are not objects, or that hold a number JSON cannot
// represent (NaN, Infinity), are dropped. The result is empty, never
// nil-with-error, when nothing could be parsed.
func Ingest(text string) []domain.Record {
	var p fastjson.Parser

	if v, err := p.Parse(text); err == nil {
		switch v.Type() {
		case fastjson.TypeArray:
			arr, _ := v.Array()
			records := make([]domain.Record, 0, len(arr))
			for _, el := range arr {
				if rec, ok := toRecord(el); ok {
					records = append(records, rec)
				}
			}
			return records
		case fastjson.TypeObject:
			if rec, ok := toRecord(v); ok {
				return []domain.Record{rec}
			}
		}
		return []domain.Record{}
	}

	records := []domain.Record{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := p.Parse(line)
		if err != nil {
			continue
		}
		if rec, ok := toRecord(v); ok {
			records = append(records, rec)
		}
	}
	return records
}

func toRecord(v *fastjson.Value) (domain.Record, bool) {
	obj, err := v.Object()
	if err != nil {
		return nil, false
	}
	rec := make(domain.Record, obj.Len())
	ok := true
	obj.Visit(func(key []byte, val *fastjson.Value) {
		var valid bool
		rec[string(key)], valid = toValue(val)
		ok = ok && valid
	})
	if !ok {
		return nil, false
	}
	return rec, true
}

// toValue mirrors the shapes encoding/json produces for interface{} targets,
// except that numbers are kept as json.Number with their original text.
// It reports false for numbers that are not valid JSON.
func toValue(v *fastjson.Value) (any, bool) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		m := make(map[string]any, obj.Len())
		ok := true
		obj.Visit(func(key []byte, val *fastjson.Value) {
			var valid bool
			m[string(key)], valid = toValue(val)
			ok = ok && valid
		})
		return m, ok
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := make([]any, len(arr))
		for i, el := range arr {
			var valid bool
			if out[i], valid = toValue(el); !valid {
				return nil, false
			}
		}
		return out, true
	case fastjson.TypeString:
		return string(v.GetStringBytes()), true
	case fastjson.TypeNumber:
		raw := v.String()
		if !json.Valid([]byte(raw)) {
			return nil, false
		}
		return json.Number(raw), true
	case fastjson.TypeTrue:
		return true, true
	case fastjson.TypeFalse:
		return false, true
	}
	return nil, true
}
