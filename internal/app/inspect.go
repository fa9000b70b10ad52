package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/types"
)

// Inspect reads a package manifest back and checks that its sections agree:
// [start] lists the [bundle] names in the same order, and every section has
// one line per artifact in ascending coordinate order.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.ManifestReader.ReadManifest(path)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		Bundles:  len(manifest.Bundles),
		Start:    len(manifest.Start),
		Maven:    len(manifest.Maven),
		Groups:   summarizeGroups(manifest.Maven),
		Problems: checkManifest(manifest),
	}
	if len(result.Problems) > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("manifest sections disagree: %s", strings.Join(result.Problems, "; ")))
	}
	return result, nil
}

func checkManifest(manifest types.PackageManifest) []string {
	var problems []string
	if len(manifest.Bundles) != len(manifest.Start) || len(manifest.Bundles) != len(manifest.Maven) {
		problems = append(problems, fmt.Sprintf(
			"section sizes differ: bundle=%d start=%d maven=%d",
			len(manifest.Bundles), len(manifest.Start), len(manifest.Maven),
		))
	}
	for i := 0; i < min(len(manifest.Bundles), len(manifest.Start)); i++ {
		if manifest.Bundles[i].SymbolicName != manifest.Start[i] {
			problems = append(problems, fmt.Sprintf(
				"start line %d is %s, bundle line is %s",
				i+1, manifest.Start[i], manifest.Bundles[i].SymbolicName,
			))
		}
	}
	for i := 1; i < len(manifest.Maven); i++ {
		prev := types.NewCoordinate(manifest.Maven[i-1].Group, manifest.Maven[i-1].Artifact)
		next := types.NewCoordinate(manifest.Maven[i].Group, manifest.Maven[i].Artifact)
		if prev.Compare(next) >= 0 {
			problems = append(problems, fmt.Sprintf("maven line %d (%s) is not after %s", i+1, next, prev))
		}
	}
	return problems
}

func summarizeGroups(lines []types.ManifestMavenLine) []InspectGroupSummary {
	byGroup := map[string][]string{}
	for _, line := range lines {
		byGroup[line.Group] = append(byGroup[line.Group], line.Artifact)
	}
	groups := make([]string, 0, len(byGroup))
	for group := range byGroup {
		groups = append(groups, group)
	}
	slices.Sort(groups)
	summaries := make([]InspectGroupSummary, 0, len(groups))
	for _, group := range groups {
		artifacts := byGroup[group]
		slices.Sort(artifacts)
		summaries = append(summaries, InspectGroupSummary{Group: group, Artifacts: artifacts})
	}
	return summaries
}
