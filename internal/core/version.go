package core

import "araqne-pkg/internal/types"

// versionCache memoizes parsed versions. Dependency reports of sibling
// modules repeat the same version strings many times over.
type versionCache struct {
	parsed map[string]types.Version
}

func newVersionCache() *versionCache {
	return &versionCache{parsed: map[string]types.Version{}}
}

// version returns the parsed version, caching the result.
func (c *versionCache) version(value string) types.Version {
	if parsed, ok := c.parsed[value]; ok {
		return parsed
	}
	parsed := types.ParseVersion(value)
	c.parsed[value] = parsed
	return parsed
}
