package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/types"
)

// ArtifactPolicy answers exclusion queries and carries the force-include
// pins. Exclude entries are "group:artifact", "group:prefix*", "group:*"
// or "*".
type ArtifactPolicy struct {
	Exclude     []string
	Include     []types.PinnedArtifact
	exact       map[types.Coordinate]struct{}
	prefixes    map[string][]string
	wholeGroups map[string]struct{}
	wildcardAll bool
}

func NewArtifactPolicy(policy types.PackagePolicy) (ArtifactPolicy, error) {
	p := ArtifactPolicy{
		Exclude: append([]string(nil), policy.Exclude...),
	}
	if err := p.compile(); err != nil {
		return ArtifactPolicy{}, err
	}
	seen := map[types.Coordinate]struct{}{}
	for _, pin := range policy.Include {
		pin = types.PinnedArtifact{
			Group:    strings.TrimSpace(pin.Group),
			Artifact: strings.TrimSpace(pin.Artifact),
			Version:  strings.TrimSpace(pin.Version),
		}
		if pin.Group == "" || pin.Artifact == "" || pin.Version == "" {
			return ArtifactPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("include entry requires group, artifact and version: %s:%s:%s", pin.Group, pin.Artifact, pin.Version))
		}
		if _, ok := seen[pin.Coordinate()]; ok {
			return ArtifactPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate include entry: %s", pin.Coordinate()))
		}
		seen[pin.Coordinate()] = struct{}{}
		p.Include = append(p.Include, pin)
	}
	return p, nil
}

func (p ArtifactPolicy) Excluded(coordinate types.Coordinate) bool {
	if p.wildcardAll {
		return true
	}
	if _, ok := p.exact[coordinate]; ok {
		return true
	}
	if _, ok := p.wholeGroups[coordinate.Group]; ok {
		return true
	}
	for _, prefix := range p.prefixes[coordinate.Group] {
		if strings.HasPrefix(coordinate.Artifact, prefix) {
			return true
		}
	}
	return false
}

func (p ArtifactPolicy) Pins() []types.PinnedArtifact {
	return append([]types.PinnedArtifact(nil), p.Include...)
}

func (p *ArtifactPolicy) compile() error {
	p.exact = map[types.Coordinate]struct{}{}
	p.prefixes = map[string][]string{}
	p.wholeGroups = map[string]struct{}{}
	for _, pattern := range p.Exclude {
		parsed, ok := parsePattern(pattern)
		if !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid exclude pattern: %q", pattern))
		}
		switch parsed.kind {
		case patternWildcard:
			p.wildcardAll = true
		case patternGroup:
			p.wholeGroups[parsed.group] = struct{}{}
		case patternPrefix:
			p.prefixes[parsed.group] = append(p.prefixes[parsed.group], parsed.artifact)
		case patternExact:
			p.exact[types.NewCoordinate(parsed.group, parsed.artifact)] = struct{}{}
		}
	}
	return nil
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternGroup
	patternWildcard
	patternInvalid
)

type parsedPattern struct {
	kind     patternKind
	group    string
	artifact string
}

func parsePattern(pattern string) (parsedPattern, bool) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return parsedPattern{kind: patternInvalid}, false
	}
	if trimmed == "*" {
		return parsedPattern{kind: patternWildcard}, true
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 {
		return parsedPattern{kind: patternInvalid}, false
	}
	group := strings.TrimSpace(parts[0])
	artifact := strings.TrimSpace(parts[1])
	if group == "" || artifact == "" || strings.Contains(group, "*") {
		return parsedPattern{kind: patternInvalid}, false
	}
	if artifact == "*" {
		return parsedPattern{kind: patternGroup, group: group}, true
	}
	if strings.HasSuffix(artifact, "*") {
		prefix := strings.TrimSuffix(artifact, "*")
		if strings.Contains(prefix, "*") {
			return parsedPattern{kind: patternInvalid}, false
		}
		return parsedPattern{kind: patternPrefix, group: group, artifact: prefix}, true
	}
	if strings.Contains(artifact, "*") {
		return parsedPattern{kind: patternInvalid}, false
	}
	return parsedPattern{kind: patternExact, group: group, artifact: artifact}, true
}
