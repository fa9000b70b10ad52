package ports

import "araqne-pkg/internal/types"

type ManifestReaderPort interface {
	ReadManifest(path string) (types.PackageManifest, error)
}
