package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"araqne-pkg/internal/ports"
)

const (
	reportPrefix = "araqne-dep-"
	reportSuffix = ".out"
)

// ReportStoreAdapter keeps one dependency report per descriptor in Dir. The
// file name is derived from the descriptor's absolute path, so repeated runs
// over the same project reuse the same report.
type ReportStoreAdapter struct {
	Dir string
}

func NewReportStoreAdapter(dir string) ReportStoreAdapter {
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	return ReportStoreAdapter{Dir: dir}
}

func (a ReportStoreAdapter) ReportPath(descriptorPath string) (string, error) {
	if strings.TrimSpace(descriptorPath) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is empty")
	}
	abs, err := filepath.Abs(descriptorPath)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid descriptor path").
			WithCause(err)
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(a.Dir, reportPrefix+hex.EncodeToString(sum[:])[:12]+reportSuffix), nil
}

func (a ReportStoreAdapter) ReadReport(path string) ([]string, bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read dependency report").
			WithCause(err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	return lines, true, nil
}

func (a ReportStoreAdapter) Clean() (int, error) {
	matches, err := filepath.Glob(filepath.Join(a.Dir, reportPrefix+"*"+reportSuffix))
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list dependency reports").
			WithCause(err)
	}
	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove dependency report").
				WithCause(err)
		}
		removed++
	}
	return removed, nil
}

var _ ports.ReportStorePort = ReportStoreAdapter{}
