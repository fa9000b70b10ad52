package ports

import "araqne-pkg/internal/types"

type PolicyPort interface {
	Excluded(coordinate types.Coordinate) bool
	Pins() []types.PinnedArtifact
}
