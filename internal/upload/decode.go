// Package upload turns an uploaded log file into text for the tflog pipeline.
package upload

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	ErrUnsupportedFormat = errors.New("only .json and .log files are supported")
	ErrTooLarge          = errors.New("upload exceeds size limit")
	ErrNotText           = errors.New("upload is not valid UTF-8 text")
)

var allowedExt = []string{".json", ".log"}

// Decode validates filename and returns the decompressed contents of r as
// text. Files may be plain, .gz or .zst compressed. maxBytes limits the
// decompressed size; zero or less means no limit.
func Decode(filename string, r io.Reader, maxBytes int64) (string, error) {
	name := strings.ToLower(path.Base(filename))

	var (
		src io.Reader = r
		err error
	)
	switch ext := path.Ext(name); ext {
	case ".gz":
		var zr *gzip.Reader
		if zr, err = gzip.NewReader(r); err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		src, name = zr, strings.TrimSuffix(name, ext)
	case ".zst":
		var zr *zstd.Decoder
		if zr, err = zstd.NewReader(r); err != nil {
			return "", fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		src, name = zr, strings.TrimSuffix(name, ext)
	}

	if !allowed(path.Ext(name)) {
		return "", ErrUnsupportedFormat
	}

	if maxBytes > 0 {
		src = io.LimitReader(src, maxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", ErrTooLarge
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// Supported reports whether Decode would accept filename.
func Supported(filename string) bool {
	name := strings.ToLower(path.Base(filename))
	switch ext := path.Ext(name); ext {
	case ".gz", ".zst":
		name = strings.TrimSuffix(name, ext)
	}
	return allowed(path.Ext(name))
}

func allowed(ext string) bool {
	for _, a := range allowedExt {
		if ext == a {
			return true
		}
	}
	return false
}
