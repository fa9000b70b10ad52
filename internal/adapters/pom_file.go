package adapters

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

const pomFileName = "pom.xml"

type POMFileAdapter struct {
	mu    sync.Mutex
	cache map[string]pomCacheEntry
}

func NewPOMFileAdapter() *POMFileAdapter {
	return &POMFileAdapter{cache: map[string]pomCacheEntry{}}
}

type projectXML struct {
	GroupID    string    `xml:"groupId"`
	ArtifactID string    `xml:"artifactId"`
	Version    string    `xml:"version"`
	Packaging  string    `xml:"packaging"`
	Parent     parentXML `xml:"parent"`
}

type parentXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomCacheEntry struct {
	modTime time.Time
	module  types.RootModule
}

// LoadRootModule reads the project coordinates from a pom.xml. Group and
// version fall back to the parent declaration when the project omits them.
func (a *POMFileAdapter) LoadRootModule(path string) (types.RootModule, error) {
	path = descriptorPath(path)
	info, err := os.Stat(path)
	if err != nil {
		return types.RootModule{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read pom.xml: " + path).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.module, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.RootModule{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read pom.xml: " + path).
			WithCause(err)
	}
	var project projectXML
	if err := xml.Unmarshal(content, &project); err != nil {
		return types.RootModule{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pom.xml: " + path).
			WithCause(err)
	}

	group := firstNonEmpty(project.GroupID, project.Parent.GroupID)
	version := firstNonEmpty(project.Version, project.Parent.Version)
	artifact := strings.TrimSpace(project.ArtifactID)
	if group == "" || artifact == "" || version == "" {
		return types.RootModule{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pom.xml is missing groupId, artifactId or version: " + path)
	}
	packaging := strings.TrimSpace(project.Packaging)
	if packaging == "" {
		packaging = "jar"
	}
	module := types.RootModule{
		Coordinate:     types.NewCoordinate(group, artifact),
		Version:        version,
		Packaging:      packaging,
		DescriptorPath: path,
	}

	a.mu.Lock()
	a.cache[path] = pomCacheEntry{modTime: info.ModTime(), module: module}
	a.mu.Unlock()
	return module, nil
}

// descriptorPath maps a module directory to the pom.xml inside it.
func descriptorPath(path string) string {
	path = filepath.Clean(strings.TrimSpace(path))
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, pomFileName)
	}
	return path
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

var _ ports.DescriptorPort = (*POMFileAdapter)(nil)
