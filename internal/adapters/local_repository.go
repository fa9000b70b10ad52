package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

// LocalRepositoryAdapter resolves archive paths in a Maven local repository
// laid out as <root>/<group dirs>/<artifact>/<version>/<artifact>-<version>.jar.
type LocalRepositoryAdapter struct {
	Root string
}

// NewLocalRepositoryAdapter uses ~/.m2/repository when root is empty.
func NewLocalRepositoryAdapter(root string) (LocalRepositoryAdapter, error) {
	if strings.TrimSpace(root) != "" {
		return LocalRepositoryAdapter{Root: root}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return LocalRepositoryAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to locate home directory for local repository").
			WithCause(err)
	}
	return LocalRepositoryAdapter{Root: filepath.Join(home, ".m2", "repository")}, nil
}

func (a LocalRepositoryAdapter) ArchivePath(coordinate types.Coordinate, version string) string {
	if coordinate.Group == "" || coordinate.Artifact == "" || version == "" {
		return ""
	}
	parts := []string{a.Root}
	parts = append(parts, strings.Split(coordinate.Group, ".")...)
	parts = append(parts, coordinate.Artifact, version, coordinate.Artifact+"-"+version+".jar")
	return filepath.Join(parts...)
}

var _ ports.LocalRepositoryPort = LocalRepositoryAdapter{}
