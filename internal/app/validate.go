package app

import (
	"context"
	"strings"

	"araqne-pkg/internal/policies"
)

// Validate loads the policy and every root descriptor the resolve command
// would use, without running the dependency listing.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	rawPolicy, err := s.PolicySource.LoadPolicy(strings.TrimSpace(req.PolicyPath))
	if err != nil {
		return ValidateResult{}, err
	}
	policy, err := policies.NewArtifactPolicy(rawPolicy)
	if err != nil {
		return ValidateResult{}, err
	}
	roots, err := s.loadRoots(ctx, ResolveRequest{
		Targets:   req.Targets,
		ListFiles: req.ListFiles,
		Workspace: req.Workspace,
	})
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Excludes: len(policy.Exclude),
		Pins:     len(policy.Pins()),
	}
	for _, root := range roots {
		result.Modules = append(result.Modules, root.Coordinate.String()+":"+root.Version)
	}
	return result, nil
}
