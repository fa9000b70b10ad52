package ports

import "araqne-pkg/internal/types"

// DescriptorPort reads root module identities from project descriptors.
type DescriptorPort interface {
	// LoadRootModule accepts a pom.xml path or a directory containing one.
	LoadRootModule(path string) (types.RootModule, error)
}

// WorkspacePort discovers project descriptors within workspace roots.
type WorkspacePort interface {
	FindDescriptors(root string) ([]string, error)
}

// TargetListPort reads descriptor paths from a list file, one per line.
type TargetListPort interface {
	ReadTargets(path string) ([]string, error)
}
