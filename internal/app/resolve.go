package app

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"araqne-pkg/internal/adapters"
	"araqne-pkg/internal/core"
	"araqne-pkg/internal/policies"
	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

const defaultWorkers = 4

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	logger := log.Ctx(ctx).With().Str("run", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	roots, err := s.loadRoots(ctx, req)
	if err != nil {
		return ResolveResult{}, err
	}
	if len(roots) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no project descriptors given")
	}

	rawPolicy, err := s.PolicySource.LoadPolicy(strings.TrimSpace(req.PolicyPath))
	if err != nil {
		return ResolveResult{}, err
	}
	policy, err := policies.NewArtifactPolicy(rawPolicy)
	if err != nil {
		return ResolveResult{}, err
	}
	repository, err := s.Repository(strings.TrimSpace(req.LocalRepo))
	if err != nil {
		return ResolveResult{}, err
	}
	store := s.ReportStore(strings.TrimSpace(req.ReportDir))

	listings, err := s.listDependencies(ctx, roots, store, s.Lister(req.MavenPath, !req.Online), req.Workers, req.SkipListing)
	if err != nil {
		return ResolveResult{}, err
	}
	var failed []string
	for _, listing := range listings {
		if listing.Err == nil {
			continue
		}
		failed = append(failed, listing.Module.String())
		log.Ctx(ctx).Warn().Err(listing.Err).Str("module", listing.Module.String()).Msg("dependency listing failed; continuing without its report")
	}
	if req.Strict && len(failed) > 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("dependency listing failed for " + strings.Join(failed, ", ")).
			WithCause(firstListingError(listings))
	}

	reports, missing, err := readReports(ctx, store, listings)
	if err != nil {
		return ResolveResult{}, err
	}

	bundles := s.Bundles()
	resolver := core.NewResolver(bundles, policy, repository)
	resolved, err := resolver.Resolve(ctx, roots, reports)
	if err != nil {
		return ResolveResult{}, err
	}

	entries, fallbacks := manifestEntries(ctx, bundles, resolved.Set)
	manifest := adapters.NewManifestFileAdapter(strings.TrimSpace(req.OutputPath), req.MakeParent, s.Stdout)
	if err := manifest.WriteManifest(entries); err != nil {
		return ResolveResult{}, err
	}
	if path := strings.TrimSpace(req.ResolutionReport); path != "" {
		if err := adapters.NewResolutionReportFileAdapter(path).WriteResolutionReport(resolved.Resolution); err != nil {
			return ResolveResult{}, err
		}
	}

	log.Ctx(ctx).Info().
		Int("modules", len(roots)).
		Int("artifacts", len(entries)).
		Int("missing_reports", missing).
		Msg("package manifest resolved")
	return ResolveResult{
		Modules:        roots,
		Listings:       listings,
		Artifacts:      len(entries),
		Fallbacks:      fallbacks,
		MissingReports: missing,
		OutputPath:     manifest.Path,
	}, nil
}

// loadRoots collects descriptors from list files, positional targets and
// workspace roots, in that order. Aggregator poms found by a workspace scan
// are skipped; explicitly named ones are kept.
func (s Service) loadRoots(ctx context.Context, req ResolveRequest) ([]types.RootModule, error) {
	var explicit []string
	for _, listFile := range req.ListFiles {
		listFile = strings.TrimSpace(listFile)
		if listFile == "" {
			continue
		}
		targets, err := s.Targets.ReadTargets(listFile)
		if err != nil {
			return nil, err
		}
		explicit = append(explicit, targets...)
	}
	for _, target := range req.Targets {
		if target = strings.TrimSpace(target); target != "" {
			explicit = append(explicit, target)
		}
	}

	seen := map[string]struct{}{}
	var roots []types.RootModule
	add := func(path string, skipAggregator bool) error {
		module, err := s.Descriptors.LoadRootModule(path)
		if err != nil {
			return err
		}
		key := descriptorKey(module.DescriptorPath)
		if _, ok := seen[key]; ok {
			return nil
		}
		seen[key] = struct{}{}
		if skipAggregator && module.Packaging == types.PackagingPOM {
			log.Ctx(ctx).Debug().Str("pom", module.DescriptorPath).Msg("skipping aggregator pom")
			return nil
		}
		roots = append(roots, module)
		return nil
	}
	for _, path := range explicit {
		if err := add(path, false); err != nil {
			return nil, err
		}
	}
	for _, root := range req.Workspace {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		paths, err := s.Workspace.FindDescriptors(root)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			if err := add(path, true); err != nil {
				return nil, err
			}
		}
	}
	return roots, nil
}

// listDependencies runs the listing command for every root through a bounded
// worker pool. Each worker writes only its own slot; the wait group is the
// barrier before any report is read.
func (s Service) listDependencies(ctx context.Context, roots []types.RootModule, store ports.ReportStorePort, lister ports.DependencyListPort, workers int, skip bool) ([]types.ListingOutcome, error) {
	outcomes := make([]types.ListingOutcome, len(roots))
	for i, root := range roots {
		path, err := store.ReportPath(root.DescriptorPath)
		if err != nil {
			return nil, err
		}
		outcomes[i] = types.ListingOutcome{Module: root.Coordinate, ReportPath: path, Skipped: skip}
	}
	if skip {
		log.Ctx(ctx).Debug().Int("modules", len(roots)).Msg("reusing existing dependency reports")
		return outcomes, nil
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range roots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return
			}
			outcomes[i].Err = lister.ListDependencies(ctx, roots[i].DescriptorPath, outcomes[i].ReportPath)
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func readReports(ctx context.Context, store ports.ReportStorePort, listings []types.ListingOutcome) ([]types.DependencyReport, int, error) {
	reports := make([]types.DependencyReport, 0, len(listings))
	missing := 0
	for _, listing := range listings {
		report := types.DependencyReport{Module: listing.Module, Path: listing.ReportPath}
		if listing.Err == nil {
			lines, found, err := store.ReadReport(listing.ReportPath)
			if err != nil {
				return nil, 0, err
			}
			report.Lines = lines
			report.Found = found
		}
		if !report.Found {
			missing++
			log.Ctx(ctx).Debug().Str("module", listing.Module.String()).Str("report", listing.ReportPath).Msg("no dependency report for module")
		}
		reports = append(reports, report)
	}
	return reports, missing, nil
}

// manifestEntries pairs each resolved artifact with its bundle identity.
// Roots and pins bypass the identity gate, so they may lack one; those fall
// back to the artifact id and Maven version. A bundle without a
// Bundle-Version header takes the Maven version.
func manifestEntries(ctx context.Context, bundles ports.BundleIdentityPort, set types.ResolvedSet) ([]types.ManifestEntry, []string) {
	var entries []types.ManifestEntry
	var fallbacks []string
	for _, artifact := range set.Sorted() {
		identity, ok := bundles.Identity(artifact.ArchivePath)
		if !ok || !identity.Resolved() {
			identity = types.BundleIdentity{
				SymbolicName: artifact.Coordinate.Artifact,
				Version:      artifact.Version.String(),
			}
			fallbacks = append(fallbacks, artifact.Coordinate.String())
			log.Ctx(ctx).Warn().
				Str("artifact", artifact.String()).
				Str("archive", artifact.ArchivePath).
				Msg("no bundle identity in archive; using artifact id and version")
		}
		if identity.Version == "" {
			identity.Version = artifact.Version.String()
		}
		entries = append(entries, types.ManifestEntry{Artifact: artifact, Bundle: identity})
	}
	return entries, fallbacks
}

func firstListingError(listings []types.ListingOutcome) error {
	for _, listing := range listings {
		if listing.Err != nil {
			return listing.Err
		}
	}
	return nil
}

func descriptorKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
