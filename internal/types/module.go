package types

// RootModule is a build module whose dependency closure is resolved. It also
// contributes itself to the resolved set.
type RootModule struct {
	Coordinate     Coordinate
	Version        string
	Packaging      string
	DescriptorPath string
	ArchivePath    string
}

// DependencyReport is the flat dependency listing produced for one root
// module. Found is false when the report file does not exist.
type DependencyReport struct {
	Module Coordinate
	Path   string
	Lines  []string
	Found  bool
}

// ListingOutcome records how the dependency listing went for one module.
type ListingOutcome struct {
	Module     Coordinate
	ReportPath string
	Skipped    bool
	Err        error
}
