package flatbin

import (
	"strings"
)

// Field names one header scalar.
type Field string

// Header scalar names accepted by [ParseFields].
const (
	FieldSampleRate Field = "fs"
	FieldResolution Field = "fr"
	FieldS1         Field = "S1"
	FieldS2         Field = "S2"
	FieldNENBW      Field = "NENBW"
	FieldENBW       Field = "ENBW"
)

// DefaultFields is the full header in canonical order.
const DefaultFields = "fs,fr,S1,S2,NENBW,ENBW"

var knownFields = []Field{
	FieldSampleRate, FieldResolution, FieldS1, FieldS2, FieldNENBW, FieldENBW,
}

// Header holds the scalars that may precede a payload.
type Header struct {
	SampleRate float64 `yaml:"fs"`
	Resolution float64 `yaml:"fr"`
	S1         float64 `yaml:"s1"`
	S2         float64 `yaml:"s2"`
	NENBW      float64 `yaml:"nenbw"`
	ENBW       float64 `yaml:"enbw"`
}

// Value returns the scalar named by f, or 0 for an unknown field.
func (h Header) Value(f Field) float64 {
	switch f {
	case FieldSampleRate:
		return h.SampleRate
	case FieldResolution:
		return h.Resolution
	case FieldS1:
		return h.S1
	case FieldS2:
		return h.S2
	case FieldNENBW:
		return h.NENBW
	case FieldENBW:
		return h.ENBW
	default:
		return 0
	}
}

// ParseFields splits a comma-separated list into header fields in the
// given order. Names match case-insensitively; unknown names are skipped
// and returned separately. Repeated names are kept.
func ParseFields(list string) (fields []Field, unknown []string) {
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := lookupField(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		fields = append(fields, f)
	}
	return fields, unknown
}

func lookupField(name string) (Field, bool) {
	for _, f := range knownFields {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}
