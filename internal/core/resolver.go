package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"araqne-pkg/internal/policies"
	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

type Resolver struct {
	Bundles    ports.BundleIdentityPort
	Policy     ports.PolicyPort
	Repository ports.LocalRepositoryPort
}

type ResolveResult struct {
	Set        types.ResolvedSet
	Resolution types.ResolutionReport
}

func NewResolver(bundles ports.BundleIdentityPort, policy ports.PolicyPort, repository ports.LocalRepositoryPort) Resolver {
	return Resolver{
		Bundles:    bundles,
		Policy:     policy,
		Repository: repository,
	}
}

// Resolve merges the root modules and their dependency reports into one set
// holding the highest version per coordinate. Roots are seeded first, reports
// are merged in the given order, and force-include pins are applied last.
func (r Resolver) Resolve(ctx context.Context, roots []types.RootModule, reports []types.DependencyReport) (ResolveResult, error) {
	if r.Bundles == nil || r.Policy == nil || r.Repository == nil {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires bundle identity, policy and repository ports")
	}

	set := types.NewResolvedSet()
	result := ResolveResult{
		Set:        set,
		Resolution: types.ResolutionReport{Records: []types.ResolutionRecord{}},
	}
	record := func(artifact types.Artifact, outcome types.ResolutionOutcome, source string, line int) {
		result.Resolution.Records = append(result.Resolution.Records, types.ResolutionRecord{
			Coordinate: artifact.Coordinate,
			Version:    artifact.Version.String(),
			Outcome:    outcome,
			Source:     source,
			Line:       line,
		})
	}

	for _, root := range roots {
		candidate := r.rootArtifact(root)
		existing, ok := set.Get(candidate.Coordinate)
		if !ok {
			set.Put(candidate)
			record(candidate, types.OutcomeSeeded, root.DescriptorPath, 0)
			continue
		}
		winner, outcome := policies.ChooseCandidate(existing, candidate)
		set.Put(winner)
		record(candidate, outcome, root.DescriptorPath, 0)
	}

	parser := NewReportParser()
	for _, report := range reports {
		source := report.Module.String()
		if !report.Found {
			log.Ctx(ctx).Debug().Str("module", source).Str("report", report.Path).Msg("dependency report missing")
			continue
		}
		for idx, line := range report.Lines {
			parsed := parser.ParseLine(line)
			switch parsed.Status {
			case LineBlank:
				continue
			case LineMalformed:
				record(types.Artifact{}, types.OutcomeMalformed, source, idx+1)
				continue
			}
			candidate := parsed.Artifact
			outcome := r.merge(set, candidate)
			if outcome == types.OutcomeExcluded || outcome == types.OutcomeUnresolved {
				log.Ctx(ctx).Debug().
					Str("artifact", candidate.String()).
					Str("outcome", string(outcome)).
					Msg("dependency dropped")
			}
			record(candidate, outcome, source, idx+1)
		}
	}

	for _, pin := range r.Policy.Pins() {
		assert.NotEmpty(ctx, pin.Version, "pinned artifact version must be set")
		pinned := types.NewArtifact(
			pin.Group,
			pin.Artifact,
			"",
			pin.Version,
			types.ScopeCompile,
			r.Repository.ArchivePath(pin.Coordinate(), pin.Version),
		)
		set.Put(pinned)
		record(pinned, types.OutcomeForced, "policy", 0)
	}

	log.Ctx(ctx).Debug().Int("resolved", set.Len()).Int("records", len(result.Resolution.Records)).Msg("resolver completed")
	return result, nil
}

// merge applies one report candidate to the set. Exclusion and bundle
// identity only gate coordinates that are not resolved yet.
func (r Resolver) merge(set types.ResolvedSet, candidate types.Artifact) types.ResolutionOutcome {
	if existing, ok := set.Get(candidate.Coordinate); ok {
		winner, outcome := policies.ChooseCandidate(existing, candidate)
		set.Put(winner)
		return outcome
	}
	if r.Policy.Excluded(candidate.Coordinate) {
		return types.OutcomeExcluded
	}
	if identity, ok := r.Bundles.Identity(candidate.ArchivePath); !ok || !identity.Resolved() {
		return types.OutcomeUnresolved
	}
	set.Put(candidate)
	return types.OutcomeInserted
}

func (r Resolver) rootArtifact(root types.RootModule) types.Artifact {
	archivePath := root.ArchivePath
	if archivePath == "" {
		archivePath = r.Repository.ArchivePath(root.Coordinate, root.Version)
	}
	return types.NewArtifact(
		root.Coordinate.Group,
		root.Coordinate.Artifact,
		root.Packaging,
		root.Version,
		types.ScopeCompile,
		archivePath,
	)
}
