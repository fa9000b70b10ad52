package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

type ManifestReaderAdapter struct{}

func NewManifestReaderAdapter() ManifestReaderAdapter {
	return ManifestReaderAdapter{}
}

func (a ManifestReaderAdapter) ReadManifest(path string) (types.PackageManifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.PackageManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest not found").
			WithCause(err)
	}
	return ParseManifest(string(content))
}

// ParseManifest reads the three manifest sections back into columns.
func ParseManifest(content string) (types.PackageManifest, error) {
	manifest := types.PackageManifest{}
	section := ""
	for idx, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			switch line {
			case sectionBundle, sectionStart, sectionMaven:
				section = line
				continue
			default:
				return types.PackageManifest{}, invalidManifestLine(idx, "unknown section "+line)
			}
		}
		fields := strings.Fields(line)
		switch section {
		case sectionBundle:
			if len(fields) != 2 {
				return types.PackageManifest{}, invalidManifestLine(idx, "bundle line needs a symbolic name and a version")
			}
			manifest.Bundles = append(manifest.Bundles, types.ManifestBundleLine{SymbolicName: fields[0], Version: fields[1]})
		case sectionStart:
			if len(fields) != 1 {
				return types.PackageManifest{}, invalidManifestLine(idx, "start line needs exactly one symbolic name")
			}
			manifest.Start = append(manifest.Start, fields[0])
		case sectionMaven:
			if len(fields) != 3 {
				return types.PackageManifest{}, invalidManifestLine(idx, "maven line needs group, artifact and version")
			}
			manifest.Maven = append(manifest.Maven, types.ManifestMavenLine{Group: fields[0], Artifact: fields[1], Version: fields[2]})
		default:
			return types.PackageManifest{}, invalidManifestLine(idx, "content before the first section")
		}
	}
	return manifest, nil
}

func invalidManifestLine(idx int, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid manifest line %d: %s", idx+1, reason))
}

var _ ports.ManifestReaderPort = ManifestReaderAdapter{}
