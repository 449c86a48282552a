package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Format names a raw log format.
type Format string

const (
	FormatMjlog Format = "mjlog"
	FormatMjson Format = "mjson"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMjlog, FormatMjson}

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Extension returns the file extension of raw logs in this format.
func (f Format) Extension() string {
	if f == FormatMjlog {
		return ".xml"
	}
	return ".json"
}

// ContentType returns the MIME type of raw logs in this format.
func (f Format) ContentType() string {
	if f == FormatMjlog {
		return "application/xml"
	}
	return "application/json"
}

var idPattern = regexp.MustCompile(`^(\d+)(\.\w+)$`)

// ParseObjectID extracts the match id of an object named <id><ext>.
func ParseObjectID(name, ext string) (int64, bool) {
	m := idPattern.FindStringSubmatch(name)
	if m == nil || m[2] != ext {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
