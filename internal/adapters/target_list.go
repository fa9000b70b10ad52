package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
)

// TargetListAdapter reads descriptor paths from a list file. Blank lines and
// lines starting with '#' are skipped. Entries are returned as written, so
// relative paths resolve against the working directory.
type TargetListAdapter struct{}

func NewTargetListAdapter() TargetListAdapter {
	return TargetListAdapter{}
}

func (a TargetListAdapter) ReadTargets(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target list not found: " + path).
			WithCause(err)
	}
	var targets []string
	for _, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	return targets, nil
}

var _ ports.TargetListPort = TargetListAdapter{}
