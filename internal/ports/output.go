package ports

import "araqne-pkg/internal/types"

type ManifestPort interface {
	WriteManifest(entries []types.ManifestEntry) error
}

type ResolutionReportPort interface {
	WriteResolutionReport(report types.ResolutionReport) error
}
