package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"araqne-pkg/internal/app"
)

type cleanOptions struct {
	ReportDir string
}

func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached dependency reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "Dependency report directory (OS temp dir when empty)")
	_ = viper.BindPFlag("report_dir", cmd.Flags().Lookup("report-dir"))
	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	service := newAppService()
	result, err := service.Clean(ctx, app.CleanRequest{
		ReportDir: resolveString(cmd, opts.ReportDir, "report_dir", "report-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed: %d reports\n", result.Removed)
	return nil
}
