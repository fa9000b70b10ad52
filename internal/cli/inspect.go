package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"araqne-pkg/internal/app"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Check a package manifest and summarize its contents",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, path string) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{ManifestPath: path})
	out := cmd.OutOrStdout()
	for _, problem := range result.Problems {
		fmt.Fprintf(out, "problem: %s\n", problem)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "bundles: %d\n", result.Bundles)
	fmt.Fprintf(out, "start entries: %d\n", result.Start)
	fmt.Fprintf(out, "maven artifacts: %d\n", result.Maven)
	for _, group := range result.Groups {
		fmt.Fprintf(out, "- %s: %d artifacts\n", group.Group, len(group.Artifacts))
		fmt.Fprintf(out, "  %s\n", strings.Join(group.Artifacts, ", "))
	}
	return nil
}
