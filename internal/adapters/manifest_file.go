package adapters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

const (
	sectionBundle = "[bundle]"
	sectionStart  = "[start]"
	sectionMaven  = "[maven]"

	versionColumnWidth = 15
)

// ManifestFileAdapter renders the package manifest to Path, or to Out when
// Path is empty.
type ManifestFileAdapter struct {
	Path       string
	MakeParent bool
	Out        io.Writer
}

func NewManifestFileAdapter(path string, makeParent bool, out io.Writer) ManifestFileAdapter {
	if out == nil {
		out = os.Stdout
	}
	return ManifestFileAdapter{Path: path, MakeParent: makeParent, Out: out}
}

func (a ManifestFileAdapter) WriteManifest(entries []types.ManifestEntry) error {
	content := RenderManifest(entries)
	if a.Path == "" {
		if _, err := io.WriteString(a.Out, content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write manifest").
				WithCause(err)
		}
		return nil
	}
	if a.MakeParent {
		if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create manifest directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(a.Path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest " + a.Path).
			WithCause(err)
	}
	return nil
}

// RenderManifest lays out the [bundle], [start] and [maven] sections in
// ascending coordinate order with columns padded to the longest value.
func RenderManifest(entries []types.ManifestEntry) string {
	ordered := append([]types.ManifestEntry(nil), entries...)
	slices.SortStableFunc(ordered, func(a, b types.ManifestEntry) int {
		return a.Artifact.Coordinate.Compare(b.Artifact.Coordinate)
	})

	nameWidth, groupWidth, artifactWidth := 0, 0, 0
	for _, entry := range ordered {
		nameWidth = max(nameWidth, len(entry.Bundle.SymbolicName))
		groupWidth = max(groupWidth, len(entry.Artifact.Coordinate.Group))
		artifactWidth = max(artifactWidth, len(entry.Artifact.Coordinate.Artifact))
	}

	var b strings.Builder
	writeLine := func(line string) {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	writeLine(sectionBundle)
	for _, entry := range ordered {
		writeLine(fmt.Sprintf("%-*s %-*s", nameWidth+1, entry.Bundle.SymbolicName, versionColumnWidth, entry.Bundle.Version))
	}
	writeLine("")
	writeLine(sectionStart)
	for _, entry := range ordered {
		writeLine(entry.Bundle.SymbolicName)
	}
	writeLine("")
	writeLine(sectionMaven)
	for _, entry := range ordered {
		writeLine(fmt.Sprintf("%-*s %-*s %-*s",
			groupWidth+1, entry.Artifact.Coordinate.Group,
			artifactWidth+1, entry.Artifact.Coordinate.Artifact,
			versionColumnWidth, entry.Artifact.Version.String(),
		))
	}
	return b.String()
}

var _ ports.ManifestPort = ManifestFileAdapter{}
