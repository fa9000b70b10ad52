package types

import (
	"strings"
	"unicode"
)

// Version is a parsed artifact version. Segments are split on
// non-alphanumeric characters and on digit/letter transitions, so
// "1.10.0-RC2" becomes [1 10 0 RC 2].
type Version struct {
	raw      string
	segments []versionSegment
}

type versionSegment struct {
	numeric bool
	value   string
}

func ParseVersion(value string) Version {
	raw := strings.TrimSpace(value)
	version := Version{raw: raw}
	var current strings.Builder
	currentNumeric := false
	flush := func() {
		if current.Len() == 0 {
			return
		}
		segment := versionSegment{numeric: currentNumeric, value: current.String()}
		if segment.numeric {
			segment.value = trimLeadingZeros(segment.value)
		}
		version.segments = append(version.segments, segment)
		current.Reset()
	}
	for _, r := range raw {
		isDigit := r >= '0' && r <= '9'
		if !isDigit && !unicode.IsLetter(r) {
			flush()
			continue
		}
		if current.Len() > 0 && isDigit != currentNumeric {
			flush()
		}
		currentNumeric = isDigit
		current.WriteRune(r)
	}
	flush()
	return version
}

func (v Version) String() string {
	return v.raw
}

// Canonical renders the segments joined by "." with trailing zero segments
// dropped, so versions that compare equal share one canonical form.
func (v Version) Canonical() string {
	end := len(v.segments)
	for end > 0 && v.segments[end-1].numeric && v.segments[end-1].value == "0" {
		end--
	}
	values := make([]string, 0, end)
	for _, segment := range v.segments[:end] {
		values = append(values, segment.value)
	}
	return strings.Join(values, ".")
}

func (v Version) IsZero() bool {
	return v.raw == ""
}

// Compare returns -1, 0 or 1. Numeric segments compare as integers and sort
// before non-numeric ones; the shorter version is padded with "0" against a
// numeric segment and "" against a non-numeric one.
func (v Version) Compare(other Version) int {
	count := max(len(v.segments), len(other.segments))
	for i := 0; i < count; i++ {
		a, aok := segmentAt(v.segments, i)
		b, bok := segmentAt(other.segments, i)
		if !aok {
			a = paddingFor(b)
		}
		if !bok {
			b = paddingFor(a)
		}
		if result := compareSegments(a, b); result != 0 {
			return result
		}
	}
	return 0
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

func segmentAt(segments []versionSegment, index int) (versionSegment, bool) {
	if index < len(segments) {
		return segments[index], true
	}
	return versionSegment{}, false
}

func paddingFor(counterpart versionSegment) versionSegment {
	if counterpart.numeric {
		return versionSegment{numeric: true, value: "0"}
	}
	return versionSegment{}
}

func compareSegments(a versionSegment, b versionSegment) int {
	if a.numeric != b.numeric {
		if a.numeric {
			return -1
		}
		return 1
	}
	if a.numeric {
		if len(a.value) != len(b.value) {
			if len(a.value) < len(b.value) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a.value, b.value)
}

func trimLeadingZeros(value string) string {
	trimmed := strings.TrimLeft(value, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
