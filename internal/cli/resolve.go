package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"araqne-pkg/internal/app"
)

type resolveOptions struct {
	ListFiles        []string
	Workspace        []string
	SkipListing      bool
	Output           string
	MakeParent       bool
	Workers          int
	Policy           string
	ReportDir        string
	Maven            string
	Online           bool
	LocalRepo        string
	Strict           bool
	ResolutionReport string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [pom...]",
		Short: "Resolve root modules and their dependencies into a package manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.ListFiles, "list", "f", nil, "File listing pom.xml paths, one per line")
	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s) to scan for pom.xml")
	cmd.Flags().BoolVarP(&opts.SkipListing, "skip-list", "s", false, "Reuse existing dependency reports instead of running Maven")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Manifest output path (stdout when empty)")
	cmd.Flags().BoolVarP(&opts.MakeParent, "make-parent", "p", false, "Create the output's parent directory")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 4, "Concurrent dependency listings")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "Exclude/include policy file, YAML or TOML (built-in tables when empty)")
	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "Dependency report directory (OS temp dir when empty)")
	cmd.Flags().StringVar(&opts.Maven, "maven", "mvn", "Maven executable")
	cmd.Flags().BoolVar(&opts.Online, "online", false, "Let Maven access remote repositories")
	cmd.Flags().StringVar(&opts.LocalRepo, "local-repo", "", "Local Maven repository (~/.m2/repository when empty)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a dependency listing fails")
	cmd.Flags().StringVar(&opts.ResolutionReport, "resolution-report", "", "Write one line per resolver decision to this file")

	_ = viper.BindPFlag("list", cmd.Flags().Lookup("list"))
	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("skip_list", cmd.Flags().Lookup("skip-list"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("make_parent", cmd.Flags().Lookup("make-parent"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("policy", cmd.Flags().Lookup("policy"))
	_ = viper.BindPFlag("report_dir", cmd.Flags().Lookup("report-dir"))
	_ = viper.BindPFlag("maven", cmd.Flags().Lookup("maven"))
	_ = viper.BindPFlag("online", cmd.Flags().Lookup("online"))
	_ = viper.BindPFlag("local_repo", cmd.Flags().Lookup("local-repo"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("resolution_report", cmd.Flags().Lookup("resolution-report"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, args []string) error {
	service := newAppService()
	service.Stdout = cmd.OutOrStdout()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Targets:          args,
		ListFiles:        resolveStrings(cmd, opts.ListFiles, "list", "list"),
		Workspace:        resolveStrings(cmd, opts.Workspace, "workspace", "workspace"),
		SkipListing:      resolveBool(cmd, opts.SkipListing, "skip_list", "skip-list"),
		OutputPath:       resolveString(cmd, opts.Output, "output", "output"),
		MakeParent:       resolveBool(cmd, opts.MakeParent, "make_parent", "make-parent"),
		Workers:          resolveInt(cmd, opts.Workers, "workers", "workers"),
		PolicyPath:       resolveString(cmd, opts.Policy, "policy", "policy"),
		ReportDir:        resolveString(cmd, opts.ReportDir, "report_dir", "report-dir"),
		MavenPath:        resolveString(cmd, opts.Maven, "maven", "maven"),
		Online:           resolveBool(cmd, opts.Online, "online", "online"),
		LocalRepo:        resolveString(cmd, opts.LocalRepo, "local_repo", "local-repo"),
		Strict:           resolveBool(cmd, opts.Strict, "strict", "strict"),
		ResolutionReport: resolveString(cmd, opts.ResolutionReport, "resolution_report", "resolution-report"),
	})
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "resolved: %d artifacts from %d modules -> %s\n", result.Artifacts, len(result.Modules), result.OutputPath)
	}
	return nil
}
