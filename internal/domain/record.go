package domain

import "strings"

// Terraform writes its own fields with an "@" prefix; the plain names are
// accepted as aliases for logs produced by other emitters.
const (
	KeyLevel        = "@level"
	KeyTimestamp    = "@timestamp"
	KeyMessage      = "@message"
	KeyType         = "type"
	KeyRequestID    = "tf_req_id"
	KeyRPC          = "tf_rpc"
	KeyResourceType = "tf_resource_type"

	AltKeyLevel        = "level"
	AltKeyTimestamp    = "timestamp"
	AltKeyMessage      = "message"
	AltKeyRequestID    = "request_id"
	AltKeyRPC          = "rpc"
	AltKeyResourceType = "resource_type"
)

// Record is one structured log line. Unknown fields are kept as decoded.
type Record map[string]any

func (r Record) Level() string        { return r.lookup(KeyLevel, AltKeyLevel) }
func (r Record) Timestamp() string    { return r.lookup(KeyTimestamp, AltKeyTimestamp) }
func (r Record) Message() string      { return r.lookup(KeyMessage, AltKeyMessage) }
func (r Record) Type() string         { return r.lookup(KeyType) }
func (r Record) RequestID() string    { return r.lookup(KeyRequestID, AltKeyRequestID) }
func (r Record) RPC() string          { return r.lookup(KeyRPC, AltKeyRPC) }
func (r Record) ResourceType() string { return r.lookup(KeyResourceType, AltKeyResourceType) }

// NativeKeys reports whether the record carries Terraform "@" keys.
func (r Record) NativeKeys() bool {
	for k := range r {
		if strings.HasPrefix(k, "@") {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy; nested values are shared.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// lookup returns the first non-empty string stored under keys.
func (r Record) lookup(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
