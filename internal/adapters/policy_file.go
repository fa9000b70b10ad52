package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

// PolicyFileAdapter loads exclude and force-include tables from YAML, or
// TOML when the file ends in ".toml". An empty path yields the built-in
// defaults.
type PolicyFileAdapter struct{}

func NewPolicyFileAdapter() PolicyFileAdapter {
	return PolicyFileAdapter{}
}

func (a PolicyFileAdapter) LoadPolicy(path string) (types.PackagePolicy, error) {
	if path == "" {
		return types.DefaultPackagePolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackagePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("policy file not found").
			WithCause(err)
	}
	var policy types.PackagePolicy
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &policy); err != nil {
			return types.PackagePolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse policy toml").
				WithCause(err)
		}
		return policy, nil
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return types.PackagePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse policy yaml").
			WithCause(err)
	}
	return policy, nil
}

var _ ports.PolicySourcePort = PolicyFileAdapter{}
