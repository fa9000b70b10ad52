package types

import "strings"

// Coordinate identifies a Maven artifact independent of its version.
type Coordinate struct {
	Group    string
	Artifact string
}

func NewCoordinate(group string, artifact string) Coordinate {
	return Coordinate{Group: group, Artifact: artifact}
}

// ParseCoordinate splits a "group:artifact" string. Extra fields after the
// artifact are ignored; a value without a colon yields an empty artifact.
func ParseCoordinate(value string) Coordinate {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 3)
	if len(parts) < 2 {
		return Coordinate{Group: parts[0]}
	}
	return Coordinate{Group: strings.TrimSpace(parts[0]), Artifact: strings.TrimSpace(parts[1])}
}

func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact
}

// Compare orders coordinates by group, then artifact.
func (c Coordinate) Compare(other Coordinate) int {
	if c.Group != other.Group {
		return strings.Compare(c.Group, other.Group)
	}
	return strings.Compare(c.Artifact, other.Artifact)
}

func (c Coordinate) Less(other Coordinate) bool {
	return c.Compare(other) < 0
}
