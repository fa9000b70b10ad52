package app

import (
	"io"
	"os"

	"araqne-pkg/internal/adapters"
	"araqne-pkg/internal/ports"
)

type Service struct {
	Descriptors    ports.DescriptorPort
	Workspace      ports.WorkspacePort
	Targets        ports.TargetListPort
	PolicySource   ports.PolicySourcePort
	Bundles        func() ports.BundleIdentityPort
	ManifestReader ports.ManifestReaderPort
	Lister         func(executable string, offline bool) ports.DependencyListPort
	ReportStore    func(dir string) ports.ReportStorePort
	Repository     func(root string) (ports.LocalRepositoryPort, error)
	Stdout         io.Writer
}

func NewService() Service {
	return Service{
		Descriptors:    adapters.NewPOMFileAdapter(),
		Workspace:      adapters.NewWorkspaceAdapter(),
		Targets:        adapters.NewTargetListAdapter(),
		PolicySource:   adapters.NewPolicyFileAdapter(),
		Bundles: func() ports.BundleIdentityPort {
			return adapters.NewJarManifestAdapter()
		},
		ManifestReader: adapters.NewManifestReaderAdapter(),
		Lister: func(executable string, offline bool) ports.DependencyListPort {
			return adapters.NewMavenCommandAdapter(executable, offline)
		},
		ReportStore: func(dir string) ports.ReportStorePort {
			return adapters.NewReportStoreAdapter(dir)
		},
		Repository: func(root string) (ports.LocalRepositoryPort, error) {
			return adapters.NewLocalRepositoryAdapter(root)
		},
		Stdout: os.Stdout,
	}
}
