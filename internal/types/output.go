package types

// BundleIdentity is the OSGi identity declared in an archive's manifest.
type BundleIdentity struct {
	SymbolicName string
	Version      string
}

func (b BundleIdentity) Resolved() bool {
	return b.SymbolicName != ""
}

type ManifestEntry struct {
	Artifact Artifact
	Bundle   BundleIdentity
}

type ManifestBundleLine struct {
	SymbolicName string
	Version      string
}

type ManifestMavenLine struct {
	Group    string
	Artifact string
	Version  string
}

// PackageManifest is a parsed three-section package manifest.
type PackageManifest struct {
	Bundles []ManifestBundleLine
	Start   []string
	Maven   []ManifestMavenLine
}

type ResolutionRecord struct {
	Coordinate Coordinate
	Version    string
	Outcome    ResolutionOutcome
	Source     string
	Line       int
}

type ResolutionReport struct {
	Records []ResolutionRecord
}
