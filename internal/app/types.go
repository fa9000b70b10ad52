package app

import "araqne-pkg/internal/types"

type ResolveRequest struct {
	Targets          []string
	ListFiles        []string
	Workspace        []string
	SkipListing      bool
	OutputPath       string
	MakeParent       bool
	Workers          int
	PolicyPath       string
	ReportDir        string
	MavenPath        string
	Online           bool
	LocalRepo        string
	Strict           bool
	ResolutionReport string
}

type ResolveResult struct {
	Modules        []types.RootModule
	Listings       []types.ListingOutcome
	Artifacts      int
	Fallbacks      []string
	MissingReports int
	OutputPath     string
}

type CleanRequest struct {
	ReportDir string
}

type CleanResult struct {
	Removed int
}

type InspectRequest struct {
	ManifestPath string
}

type InspectResult struct {
	Bundles  int
	Start    int
	Maven    int
	Groups   []InspectGroupSummary
	Problems []string
}

type InspectGroupSummary struct {
	Group     string
	Artifacts []string
}

type ValidateRequest struct {
	Targets    []string
	ListFiles  []string
	Workspace  []string
	PolicyPath string
}

type ValidateResult struct {
	Modules  []string
	Excludes int
	Pins     int
}
