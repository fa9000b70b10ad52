package adapters

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"araqne-pkg/internal/types"
)

func writeJar(t *testing.T, path string, manifest string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	if manifest != "" {
		entry, err := writer.Create("META-INF/MANIFEST.MF")
		require.NoError(t, err)
		_, err = entry.Write([]byte(manifest))
		require.NoError(t, err)
	}
	classFile, err := writer.Create("org/araqne/Example.class")
	require.NoError(t, err)
	_, err = classFile.Write([]byte{0xca, 0xfe, 0xba, 0xbe})
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
}

func TestJarManifestAdapter_ReadsBundleHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logdb.jar")
	manifest := strings.Join([]string{
		"Manifest-Version: 1.0",
		"Bundle-ManifestVersion: 2",
		"Bundle-SymbolicName: org.araqne.logd",
		" b;singleton:=true",
		"Bundle-Version: 2.4.1",
		"Import-Package: org.araqne.api;version=\"[3.0,4)\",org.slf4j;versio",
		" n=\"1.6\"",
		"",
		"Name: org/araqne/Example.class",
		"Bundle-SymbolicName: ignored",
		"",
	}, "\r\n")
	writeJar(t, path, manifest)

	identity, ok := NewJarManifestAdapter().Identity(path)
	require.True(t, ok)
	if diff := cmp.Diff(types.BundleIdentity{SymbolicName: "org.araqne.logdb", Version: "2.4.1"}, identity); diff != "" {
		t.Fatalf("unexpected identity (-want +got):\n%s", diff)
	}
}

func TestJarManifestAdapter_AbsenceIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.jar")
	writeJar(t, plain, "Manifest-Version: 1.0\nCreated-By: test\n")
	noManifest := filepath.Join(dir, "empty.jar")
	writeJar(t, noManifest, "")
	notZip := filepath.Join(dir, "broken.jar")
	require.NoError(t, os.WriteFile(notZip, []byte("not a zip archive"), 0644))

	adapter := NewJarManifestAdapter()
	for _, path := range []string{plain, noManifest, notZip, filepath.Join(dir, "missing.jar"), ""} {
		_, ok := adapter.Identity(path)
		assert.False(t, ok, path)
	}
}

func TestJarManifestAdapter_SymbolicNameWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jar")
	writeJar(t, path, "Manifest-Version: 1.0\nBundle-SymbolicName: a.x\n")

	identity, ok := NewJarManifestAdapter().Identity(path)
	require.True(t, ok)
	if diff := cmp.Diff(types.BundleIdentity{SymbolicName: "a.x"}, identity); diff != "" {
		t.Fatalf("unexpected identity (-want +got):\n%s", diff)
	}
}

func TestJarManifestAdapter_VersionWithoutSymbolicName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jar")
	writeJar(t, path, "Manifest-Version: 1.0\nBundle-Version: 1.0.0\n")

	identity, ok := NewJarManifestAdapter().Identity(path)
	assert.False(t, ok)
	assert.False(t, identity.Resolved())
}

func TestJarManifestAdapter_CachesPerAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.jar")
	adapter := NewJarManifestAdapter()

	_, ok := adapter.Identity(path)
	require.False(t, ok)

	writeJar(t, path, "Bundle-SymbolicName: org.araqne.api\nBundle-Version: 3.0.0\n")
	_, ok = adapter.Identity(path)
	assert.False(t, ok, "miss should stay cached")

	identity, ok := NewJarManifestAdapter().Identity(path)
	require.True(t, ok)
	assert.Equal(t, "org.araqne.api", identity.SymbolicName)
	assert.Equal(t, "3.0.0", identity.Version)
}

func TestHeaderValueStripsAttributes(t *testing.T) {
	assert.Equal(t, "org.araqne.x", headerValue(" org.araqne.x ; singleton:=true"))
	assert.Equal(t, "1.0.0", headerValue("1.0.0"))
	assert.Equal(t, "", headerValue(""))
}
