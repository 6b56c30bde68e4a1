package domain

import "fmt"

// SectionKind names a Terraform run phase.
type SectionKind int

const (
	SectionInit SectionKind = iota + 1
	SectionPlan
	SectionApply
)

// SectionKinds lists every kind in marker detection order.
var SectionKinds = []SectionKind{SectionPlan, SectionApply, SectionInit}

func (k SectionKind) String() string {
	switch k {
	case SectionInit:
		return "init"
	case SectionPlan:
		return "plan"
	case SectionApply:
		return "apply"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

func (k SectionKind) MarshalText() ([]byte, error) {
	switch k {
	case SectionInit, SectionPlan, SectionApply:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown section kind %d", int(k))
}

func (k *SectionKind) UnmarshalText(b []byte) error {
	for _, kind := range SectionKinds {
		if kind.String() == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown section kind %q", string(b))
}

// Section is a contiguous run of records belonging to one phase. Indexes
// are inclusive positions in the repaired record sequence.
type Section struct {
	Kind           SectionKind `json:"type"`
	StartIndex     int         `json:"start_index"`
	EndIndex       int         `json:"end_index"`
	RecordCount    int         `json:"log_count"`
	StartTimestamp string      `json:"start_timestamp,omitempty"`
	EndTimestamp   string      `json:"end_timestamp,omitempty"`
}
