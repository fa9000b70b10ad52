package ports

import "araqne-pkg/internal/types"

// LocalRepositoryPort maps a coordinate and version to the archive path in
// the local artifact repository.
type LocalRepositoryPort interface {
	ArchivePath(coordinate types.Coordinate, version string) string
}
