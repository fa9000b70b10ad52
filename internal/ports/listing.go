package ports

import "context"

// DependencyListPort runs the external dependency listing for one project
// descriptor and writes the flat report to outputPath.
type DependencyListPort interface {
	ListDependencies(ctx context.Context, descriptorPath string, outputPath string) error
}

// ReportStorePort locates, reads and removes cached dependency reports.
type ReportStorePort interface {
	ReportPath(descriptorPath string) (string, error)
	// ReadReport returns found=false without error when the report is missing.
	ReadReport(path string) (lines []string, found bool, err error)
	Clean() (int, error)
}
