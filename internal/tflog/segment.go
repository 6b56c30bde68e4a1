package tflog

import "github.com/Egor213/TerraTrack/internal/domain"

type openSection struct {
	kind  domain.SectionKind
	start int
	first domain.Record
	last  domain.Record
	count int
}

func (o *openSection) add(rec domain.Record) {
	o.last = rec
	o.count++
}

func (o *openSection) close(end int) domain.Section {
	return domain.Section{
		Kind:           o.kind,
		StartIndex:     o.start,
		EndIndex:       end,
		RecordCount:    o.count,
		StartTimestamp: o.first.Timestamp(),
		EndTimestamp:   o.last.Timestamp(),
	}
}

// Segment splits records into INIT, PLAN and APPLY sections. Records outside
// any opened phase belong to no section. An end marker for a phase other than
// the open one is treated as an ordinary record.
func Segment(records []domain.Record) []domain.Section {
	sections := []domain.Section{}

	var open *openSection
	for idx, rec := range records {
		var closed *domain.Section
		open, closed = step(open, idx, rec)
		if closed != nil {
			sections = append(sections, *closed)
		}
	}

	if open != nil {
		sections = append(sections, open.close(len(records)-1))
	}
	return sections
}

// step advances the scan by one record. It returns the section left open
// afterwards and the section closed by this record, if any.
func step(open *openSection, idx int, rec domain.Record) (*openSection, *domain.Section) {
	start, end := detectMarkers(rec)

	switch {
	case start != 0:
		var closed *domain.Section
		if open != nil {
			s := open.close(idx - 1)
			closed = &s
		}
		next := &openSection{kind: start, start: idx, first: rec}
		next.add(rec)
		return next, closed

	case open != nil && end == open.kind:
		open.add(rec)
		s := open.close(idx)
		return nil, &s

	case open != nil:
		open.add(rec)
	}
	return open, nil
}
