package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesReports(t *testing.T) {
	f := newResolveFixture(t)
	_, err := f.service.Resolve(t.Context(), f.request())
	require.NoError(t, err)
	keep := filepath.Join(f.reportDir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0644))

	result, err := f.service.Clean(t.Context(), CleanRequest{ReportDir: f.reportDir})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Removed)
	assert.FileExists(t, keep)

	req := f.request()
	req.SkipListing = true
	resolved, err := f.service.Resolve(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, resolved.MissingReports)
}
