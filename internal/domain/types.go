package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
)

// IDs is a list of record references. It travels as a JSON array and as a
// semicolon separated cell in CSV exports.
type IDs []string

// MarshalCSV implements gocsv.TypeMarshaller
func (ids IDs) MarshalCSV() (string, error) {
	return strings.Join(ids, ";"), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller
func (ids *IDs) UnmarshalCSV(s string) error {
	*ids = IDs{}
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			*ids = append(*ids, part)
		}
	}
	return nil
}

// Contains reports whether id is referenced
func (ids IDs) Contains(id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// FlexTime accepts any date layout dateparse understands on input and
// always emits RFC3339.
type FlexTime struct {
	time.Time
}

// ParseFlexTime parses s in any layout known to dateparse
func ParseFlexTime(s string) (FlexTime, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return FlexTime{}, err
	}
	return FlexTime{Time: t}, nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return jsoniter.Marshal(t.Format(time.RFC3339))
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	var s *string
	if err := jsoniter.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseFlexTime(*s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller
func (t FlexTime) MarshalCSV() (string, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.Format(time.RFC3339), nil
}
