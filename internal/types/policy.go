package types

// PinnedArtifact is a force-included artifact whose version always wins.
type PinnedArtifact struct {
	Group    string `yaml:"group" toml:"group"`
	Artifact string `yaml:"artifact" toml:"artifact"`
	Version  string `yaml:"version" toml:"version"`
}

func (p PinnedArtifact) Coordinate() Coordinate {
	return NewCoordinate(p.Group, p.Artifact)
}

// PackagePolicy holds the exclude and force-include tables.
type PackagePolicy struct {
	Exclude []string         `yaml:"exclude" toml:"exclude"`
	Include []PinnedArtifact `yaml:"include" toml:"include"`
}

// DefaultPackagePolicy returns the tables used when no policy file is given:
// bundles provided by the runtime platform are excluded and the iPOJO
// runtime is pinned.
func DefaultPackagePolicy() PackagePolicy {
	return PackagePolicy{
		Exclude: []string{
			"org.osgi:org.osgi.core",
			"org.araqne:araqne-api",
			"com.jcraft:jsch",
			"org.apache.sshd:sshd-core",
			"org.araqne:araqne-cron",
			"org.araqne:araqne-codec",
			"org.araqne:araqne-confdb",
			"org.slf4j:slf4j-api",
			"org.slf4j:slf4j-simple",
			"junit:junit",
			"org.bouncycastle:bcprov-jdk16",
			"org.apache.felix:org.apache.felix.framework",
			"org.apache.felix:org.apache.felix.ipojo.annotations",
			"org.apache.felix:org.apache.felix.ipojo.metadata",
			"org.apache.felix:org.osgi.compendium",
			"org.apache.felix:org.osgi.core",
			"org.apache.felix:org.osgi.foundation",
			"org.apache.felix:javax.servlet",
		},
		Include: []PinnedArtifact{
			{Group: "org.araqne", Artifact: "araqne-ipojo", Version: "1.1.0"},
		},
	}
}
