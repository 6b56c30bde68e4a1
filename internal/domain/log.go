package domain

import "time"

type Upload struct {
	Id           int       `db:"id" json:"id"`
	Filename     string    `db:"filename" json:"filename"`
	Checksum     string    `db:"checksum" json:"checksum"`
	TotalRecords int       `db:"total_records" json:"total_records"`
	FixedRecords int       `db:"fixed_records" json:"fixed_records"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// StoredLog is a persisted record with its indexed columns pulled out.
type StoredLog struct {
	Id           int       `db:"id" json:"id"`
	UploadId     int       `db:"upload_id" json:"upload_id"`
	Filename     string    `db:"filename" json:"filename"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
	Level        *string   `db:"level" json:"log_level"`
	Timestamp    *string   `db:"timestamp" json:"timestamp"`
	Message      *string   `db:"message" json:"message"`
	RequestID    *string   `db:"tf_req_id" json:"tf_req_id"`
	RPC          *string   `db:"tf_rpc" json:"tf_rpc"`
	ResourceType *string   `db:"tf_resource_type" json:"tf_resource_type"`
	RawData      Record    `db:"raw_data" json:"raw_data"`
}

type UploadResult struct {
	UploadId     int    `json:"upload_id"`
	Filename     string `json:"filename"`
	EntriesCount int    `json:"entries_count"`
	FixedCount   int    `json:"fixed_count"`
}

// AnalyzedLog is the full in-memory pipeline output for one file.
type AnalyzedLog struct {
	Filename   string            `json:"filename"`
	Logs       []Record          `json:"logs"`
	Sections   []Section         `json:"sections"`
	Timelines  []RequestTimeline `json:"timelines"`
	TotalLogs  int               `json:"total_logs"`
	FixedCount int               `json:"fixed_count"`
}

// UploadEvent is published to the broker after an upload is stored.
type UploadEvent struct {
	EventId      string         `json:"event_id"`
	UploadId     int            `json:"upload_id"`
	Filename     string         `json:"filename"`
	TotalRecords int            `json:"total_records"`
	FixedRecords int            `json:"fixed_records"`
	Levels       map[string]int `json:"levels"`
	CreatedAt    time.Time      `json:"created_at"`
}
