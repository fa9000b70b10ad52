package types

import (
	"slices"
	"strings"
)

// Artifact is one versioned dependency together with the local archive that
// backs it. The archive may not exist on disk.
type Artifact struct {
	Coordinate  Coordinate
	Type        string
	Classifier  string
	Version     Version
	Scope       string
	ArchivePath string
}

func NewArtifact(group string, artifact string, packaging string, version string, scope string, archivePath string) Artifact {
	return Artifact{
		Coordinate:  NewCoordinate(group, artifact),
		Type:        packaging,
		Version:     ParseVersion(version),
		Scope:       scope,
		ArchivePath: archivePath,
	}
}

func (a Artifact) String() string {
	return strings.Join([]string{a.Coordinate.Group, a.Coordinate.Artifact, a.Version.String(), a.Scope}, ":")
}

// Key is "group:artifact:version" with the canonical version, so equal
// artifacts share a key. Scope and packaging are not part of an artifact's
// identity.
func (a Artifact) Key() string {
	return strings.Join([]string{a.Coordinate.Group, a.Coordinate.Artifact, a.Version.Canonical()}, ":")
}

func (a Artifact) Equal(other Artifact) bool {
	return a.Coordinate == other.Coordinate && a.Version.Equal(other.Version)
}

// Compare orders by coordinate first and version second.
func (a Artifact) Compare(other Artifact) int {
	if result := a.Coordinate.Compare(other.Coordinate); result != 0 {
		return result
	}
	return a.Version.Compare(other.Version)
}

// ResolvedSet holds at most one artifact per coordinate.
type ResolvedSet struct {
	entries map[Coordinate]Artifact
}

func NewResolvedSet() ResolvedSet {
	return ResolvedSet{entries: map[Coordinate]Artifact{}}
}

func (s ResolvedSet) Get(coordinate Coordinate) (Artifact, bool) {
	artifact, ok := s.entries[coordinate]
	return artifact, ok
}

func (s ResolvedSet) Put(artifact Artifact) {
	s.entries[artifact.Coordinate] = artifact
}

func (s ResolvedSet) Len() int {
	return len(s.entries)
}

// Sorted returns the artifacts in ascending coordinate order.
func (s ResolvedSet) Sorted() []Artifact {
	out := make([]Artifact, 0, len(s.entries))
	for _, artifact := range s.entries {
		out = append(out, artifact)
	}
	slices.SortFunc(out, func(a, b Artifact) int {
		return a.Coordinate.Compare(b.Coordinate)
	})
	return out
}
