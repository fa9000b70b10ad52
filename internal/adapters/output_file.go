package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

// ResolutionReportFileAdapter writes one line per resolver decision, in the
// order the decisions were made:
//
//	outcome,group:artifact,version,source,line
type ResolutionReportFileAdapter struct {
	Path string
}

func NewResolutionReportFileAdapter(path string) ResolutionReportFileAdapter {
	return ResolutionReportFileAdapter{Path: path}
}

func (a ResolutionReportFileAdapter) WriteResolutionReport(report types.ResolutionReport) error {
	path, err := a.ensurePath()
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, record := range report.Records {
		coordinate := ""
		if record.Coordinate != (types.Coordinate{}) {
			coordinate = record.Coordinate.String()
		}
		b.WriteString(fmt.Sprintf(
			"%s,%s,%s,%s,%d\n",
			record.Outcome,
			coordinate,
			record.Version,
			record.Source,
			record.Line,
		))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write resolution report").
			WithCause(err)
	}
	return nil
}

func (a ResolutionReportFileAdapter) ensurePath() (string, error) {
	if a.Path == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolution report path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create resolution report directory").
			WithCause(err)
	}
	return a.Path, nil
}

var _ ports.ResolutionReportPort = ResolutionReportFileAdapter{}
