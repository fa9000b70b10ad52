package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAdapter_FindDescriptors(t *testing.T) {
	root := t.TempDir()
	logdb := filepath.Join(root, "araqne-logdb")
	api := filepath.Join(root, "araqne-api")
	require.NoError(t, os.MkdirAll(logdb, 0755))
	require.NoError(t, os.MkdirAll(api, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pom.xml"), []byte("<project/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(logdb, "pom.xml"), []byte("<project/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(api, "pom.xml"), []byte("<project/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(logdb, "build.xml"), []byte("<project/>"), 0644))

	paths, err := NewWorkspaceAdapter().FindDescriptors(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(api, "pom.xml"),
		filepath.Join(logdb, "pom.xml"),
		filepath.Join(root, "pom.xml"),
	}, paths)
}

func TestWorkspaceAdapter_SkipsBuildDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"target", ".git", ".idea", "node_modules"} {
		ignored := filepath.Join(root, "module", dir, "nested")
		require.NoError(t, os.MkdirAll(ignored, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(ignored, "pom.xml"), []byte("<project/>"), 0644))
	}
	real := filepath.Join(root, "module")
	require.NoError(t, os.WriteFile(filepath.Join(real, "pom.xml"), []byte("<project/>"), 0644))

	paths, err := NewWorkspaceAdapter().FindDescriptors(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(real, "pom.xml")}, paths)
}

func TestWorkspaceAdapter_EmptyRootErrors(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindDescriptors("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workspace root is empty")
}

func TestWorkspaceAdapter_NonExistentRootErrors(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindDescriptors("/nonexistent/path/that/does/not/exist")
	require.Error(t, err)
}

func TestWorkspaceAdapter_EmptyWorkspaceReturnsNil(t *testing.T) {
	paths, err := NewWorkspaceAdapter().FindDescriptors(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, paths)
}
