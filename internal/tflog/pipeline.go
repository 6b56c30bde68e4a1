package tflog

import "github.com/Egor213/TerraTrack/internal/domain"

// Analyze runs the whole pipeline over one file's text.
func Analyze(filename, text string) domain.AnalyzedLog {
	records, fixed := Repair(Ingest(text))
	return domain.AnalyzedLog{
		Filename:   filename,
		Logs:       records,
		Sections:   Segment(records),
		Timelines:  Aggregate(records),
		TotalLogs:  len(records),
		FixedCount: fixed,
	}
}
