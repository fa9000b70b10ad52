// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WritePOM writes a minimal pom.xml into dir and returns its path. An empty
// packaging leaves the element out.
func WritePOM(t *testing.T, dir string, group string, artifact string, version string, packaging string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<project xmlns=\"http://maven.apache.org/POM/4.0.0\">\n")
	b.WriteString("  <modelVersion>4.0.0</modelVersion>\n")
	fmt.Fprintf(&b, "  <groupId>%s</groupId>\n", group)
	fmt.Fprintf(&b, "  <artifactId>%s</artifactId>\n", artifact)
	fmt.Fprintf(&b, "  <version>%s</version>\n", version)
	if packaging != "" {
		fmt.Fprintf(&b, "  <packaging>%s</packaging>\n", packaging)
	}
	b.WriteString("</project>\n")
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

// WriteBundleJar writes a jar whose manifest declares the given OSGi
// identity. An empty symbolic name produces a plain, non-bundle jar; an empty
// version leaves the Bundle-Version header out.
func WriteBundleJar(t *testing.T, path string, symbolicName string, version string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	manifest, err := writer.Create("META-INF/MANIFEST.MF")
	require.NoError(t, err)
	content := "Manifest-Version: 1.0\r\n"
	if symbolicName != "" {
		content += "Bundle-ManifestVersion: 2\r\n"
		content += "Bundle-SymbolicName: " + symbolicName + "\r\n"
		if version != "" {
			content += "Bundle-Version: " + version + "\r\n"
		}
	}
	_, err = manifest.Write([]byte(content + "\r\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
	return path
}

// RepositoryJar returns the archive path of an artifact in a local Maven
// repository rooted at repo.
func RepositoryJar(repo string, group string, artifact string, version string) string {
	parts := append([]string{repo}, strings.Split(group, ".")...)
	parts = append(parts, artifact, version, artifact+"-"+version+".jar")
	return filepath.Join(parts...)
}

// ReportLine formats one dependency report line as the Maven dependency
// plugin writes it.
func ReportLine(group string, artifact string, version string, scope string, archive string) string {
	return fmt.Sprintf("   %s:%s:jar:%s:%s:%s", group, artifact, version, scope, archive)
}
