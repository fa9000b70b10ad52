package policies

import "araqne-pkg/internal/types"

// ChooseCandidate settles a version conflict for an already resolved
// coordinate. The existing entry is kept unless the candidate's version is
// strictly greater.
func ChooseCandidate(existing types.Artifact, candidate types.Artifact) (types.Artifact, types.ResolutionOutcome) {
	if candidate.Version.GreaterThan(existing.Version) {
		return candidate, types.OutcomeReplaced
	}
	return existing, types.OutcomeKept
}
