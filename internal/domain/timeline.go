package domain

// RequestTimeline is the span of all records sharing one tf_req_id.
type RequestTimeline struct {
	RequestID      string `json:"tf_req_id"`
	RPC            string `json:"tf_rpc,omitempty"`
	ResourceType   string `json:"tf_resource_type,omitempty"`
	StartTimestamp string `json:"start_timestamp,omitempty"`
	EndTimestamp   string `json:"end_timestamp,omitempty"`
	RecordCount    int    `json:"log_count"`
}
