package core

import (
	"strings"

	"araqne-pkg/internal/types"
)

type LineStatus int

const (
	LineParsed LineStatus = iota
	LineBlank
	LineMalformed
)

func (s LineStatus) String() string {
	switch s {
	case LineParsed:
		return "parsed"
	case LineBlank:
		return "blank"
	default:
		return "malformed"
	}
}

// LineResult is the outcome of decoding one dependency report line. Artifact
// is only meaningful when Status is LineParsed.
type LineResult struct {
	Artifact types.Artifact
	Status   LineStatus
}

const reportFieldCount = 6

// ReportParser decodes "group:artifact:type:version:scope:archivePath"
// lines as written by the dependency listing goal.
type ReportParser struct {
	versions *versionCache
}

func NewReportParser() *ReportParser {
	return &ReportParser{versions: newVersionCache()}
}

// ParseDependencyLine decodes a single line without a shared version cache.
func ParseDependencyLine(line string) LineResult {
	return NewReportParser().ParseLine(line)
}

// ParseLine never fails: anything that is not a dependency line is reported
// as LineBlank or LineMalformed.
func (p *ReportParser) ParseLine(line string) LineResult {
	trimmed := stripAnnotations(strings.TrimSpace(line))
	if trimmed == "" {
		return LineResult{Status: LineBlank}
	}
	fields := strings.SplitN(trimmed, ":", reportFieldCount)
	if len(fields) < reportFieldCount {
		return LineResult{Status: LineMalformed}
	}
	for i := range fields[:reportFieldCount-1] {
		fields[i] = strings.TrimSpace(fields[i])
	}
	group, artifact, packaging := fields[0], fields[1], fields[2]
	classifier := ""
	version, scope, archivePath := fields[3], fields[4], fields[5]
	if withClassifier, ok := splitClassifierForm(fields); ok {
		classifier = withClassifier[0]
		version, scope, archivePath = withClassifier[1], withClassifier[2], withClassifier[3]
	}
	if group == "" || artifact == "" || version == "" || archivePath == "" {
		return LineResult{Status: LineMalformed}
	}
	return LineResult{
		Artifact: types.Artifact{
			Coordinate:  types.NewCoordinate(group, artifact),
			Type:        packaging,
			Classifier:  classifier,
			Version:     p.versions.version(version),
			Scope:       scope,
			ArchivePath: archivePath,
		},
		Status: LineParsed,
	}
}

// splitClassifierForm recognises "g:a:type:classifier:version:scope:path".
// In that form the fifth field holds the version and the sixth starts with
// a scope; a plain six field line has a scope in the fifth field.
func splitClassifierForm(fields []string) ([4]string, bool) {
	if types.KnownScope(fields[4]) {
		return [4]string{}, false
	}
	scope, path, ok := strings.Cut(fields[5], ":")
	if !ok || !types.KnownScope(strings.TrimSpace(scope)) {
		return [4]string{}, false
	}
	return [4]string{fields[3], fields[4], strings.TrimSpace(scope), path}, true
}

// stripAnnotations drops the " -- module name" and "(optional)" suffixes
// newer dependency plugins append to each line.
func stripAnnotations(line string) string {
	if idx := strings.Index(line, " -- "); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, "(optional)"))
	return line
}
