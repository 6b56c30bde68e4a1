package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
)

const (
	LogLevelTrace   = "trace"
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidSkip      = errors.New("skip must not be negative")
	ErrInvalidLimit     = fmt.Errorf("limit must be between 0 and %d", repotypes.MaxLimit)
	ErrInvalidUploadId  = errors.New("upload_id must not be negative")
	ErrInvalidTimeRange = errors.New("timestamp_from is after timestamp_to")
)

func ValidateLogFilter(lf *repotypes.LogFilter) error {
	if lf.Level != "" {
		switch strings.ToLower(lf.Level) {
		case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelWarning, LogLevelError:
		default:
			return ErrInvalidLogLevel
		}
	}

	if lf.Skip < 0 {
		return ErrInvalidSkip
	}
	if err := ValidateLimit(lf.Limit); err != nil {
		return err
	}
	if lf.UploadId < 0 {
		return ErrInvalidUploadId
	}

	if lf.TimestampFrom != "" && lf.TimestampTo != "" && lf.TimestampFrom > lf.TimestampTo {
		return ErrInvalidTimeRange
	}

	return nil
}

// ValidateLimit accepts zero, meaning the default page size.
func ValidateLimit(limit int) error {
	if limit < 0 || limit > repotypes.MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}
