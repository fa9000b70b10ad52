package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"araqne-pkg/internal/app"
)

type validateOptions struct {
	ListFiles []string
	Workspace []string
	Policy    string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [pom...]",
		Short: "Check the policy file and root descriptors without running Maven",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.ListFiles, "list", "f", nil, "File listing pom.xml paths, one per line")
	cmd.Flags().StringSliceVar(&opts.Workspace, "workspace", nil, "Workspace root(s) to scan for pom.xml")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "Exclude/include policy file, YAML or TOML (built-in tables when empty)")
	_ = viper.BindPFlag("list", cmd.Flags().Lookup("list"))
	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("policy", cmd.Flags().Lookup("policy"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions, args []string) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		Targets:    args,
		ListFiles:  resolveStrings(cmd, opts.ListFiles, "list", "list"),
		Workspace:  resolveStrings(cmd, opts.Workspace, "workspace", "workspace"),
		PolicyPath: resolveString(cmd, opts.Policy, "policy", "policy"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "policy: %d excludes, %d pins\n", result.Excludes, result.Pins)
	for _, module := range result.Modules {
		fmt.Fprintf(out, "module: %s\n", module)
	}
	return nil
}
