package repotypes

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// LogFilter narrows stored records. Zero values mean "no condition";
// timestamps are compared as strings.
type LogFilter struct {
	UploadId      int
	Level         string
	ResourceType  string
	TimestampFrom string
	TimestampTo   string
	Search        string
	Skip          int
	Limit         int
}
