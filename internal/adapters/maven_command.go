package adapters

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/shared"
)

const defaultMavenExecutable = "mvn"

// MavenCommandAdapter lists the runtime dependency closure of a project by
// running the Maven dependency plugin.
type MavenCommandAdapter struct {
	Executable string
	Offline    bool
}

func NewMavenCommandAdapter(executable string, offline bool) MavenCommandAdapter {
	if executable == "" {
		executable = defaultMavenExecutable
	}
	return MavenCommandAdapter{Executable: executable, Offline: offline}
}

func (a MavenCommandAdapter) ListDependencies(ctx context.Context, descriptorPath string, outputPath string) error {
	args, err := a.listArgs(descriptorPath, outputPath)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("pom", descriptorPath).Strs("args", args).Msg("running dependency listing")
	cmd := exec.CommandContext(ctx, a.executable(), args...)
	cmd.Dir = filepath.Dir(descriptorPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("dependency listing failed for " + descriptorPath).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a MavenCommandAdapter) listArgs(descriptorPath string, outputPath string) ([]string, error) {
	if descriptorPath == "" || outputPath == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor and output paths are required")
	}
	descriptor, err := filepath.Abs(descriptorPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid descriptor path").
			WithCause(err)
	}
	output, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid report path").
			WithCause(err)
	}
	var args []string
	if a.Offline {
		args = append(args, "-o")
	}
	args = append(args,
		"dependency:list",
		"-DincludeScope=runtime",
		"-DoutputAbsoluteArtifactFilename=true",
		"-f", descriptor,
		"-DoutputFile="+output,
	)
	return args, nil
}

func (a MavenCommandAdapter) executable() string {
	if a.Executable == "" {
		return defaultMavenExecutable
	}
	return a.Executable
}

var _ ports.DependencyListPort = MavenCommandAdapter{}
