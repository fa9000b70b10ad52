package ports

import "araqne-pkg/internal/types"

// BundleIdentityPort reads the OSGi identity embedded in an archive.
// Absence is reported through the boolean, never as an error.
type BundleIdentityPort interface {
	Identity(archivePath string) (types.BundleIdentity, bool)
}
