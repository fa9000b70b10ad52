package ports

import "araqne-pkg/internal/types"

type PolicySourcePort interface {
	LoadPolicy(path string) (types.PackagePolicy, error)
}
