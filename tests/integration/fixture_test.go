package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"araqne-pkg/internal/app"
	"araqne-pkg/internal/ports"
	"araqne-pkg/tests/testutil"
)

// fixtureLister stands in for Maven: it copies the committed report for a
// module, named after the module directory, with ${REPO} expanded.
type fixtureLister struct {
	reportsDir string
	repo       string
}

func (l fixtureLister) ListDependencies(_ context.Context, descriptorPath string, outputPath string) error {
	name := filepath.Base(filepath.Dir(descriptorPath)) + ".deps"
	content, err := os.ReadFile(filepath.Join(l.reportsDir, name))
	if err != nil {
		return err
	}
	expanded := strings.ReplaceAll(string(content), "${REPO}", l.repo)
	return os.WriteFile(outputPath, []byte(expanded), 0644)
}

type fixtureArchive struct {
	group        string
	artifact     string
	version      string
	symbolicName string
	bundle       string
}

var fixtureArchives = []fixtureArchive{
	{"org.araqne", "araqne-logdb", "2.4.1", "org.araqne.logdb", "2.4.1"},
	{"org.araqne", "araqne-log-api", "3.1.0", "org.araqne.log.api", "3.1.0"},
	{"org.araqne", "araqne-log-api", "3.0.2", "org.araqne.log.api", "3.0.2"},
	{"org.araqne", "araqne-ipojo", "1.1.0", "org.araqne.ipojo", "1.1.0"},
	{"org.araqne", "araqne-confdb", "1.0.0", "org.araqne.confdb", "1.0.0"},
	{"commons-io", "commons-io", "2.2", "org.apache.commons.io", "2.2.0"},
	{"commons-io", "commons-io", "2.4", "org.apache.commons.io", "2.4.0"},
	{"org.slf4j", "slf4j-api", "1.6.6", "slf4j.api", "1.6.6"},
	{"org.json", "json", "20090211", "", ""},
}

// newFixtureService builds a local repository holding the fixture archives
// and a service whose listing step replays the committed reports.
func newFixtureService(t *testing.T, root string) (app.Service, string) {
	t.Helper()
	repo := filepath.Join(t.TempDir(), "m2")
	for _, archive := range fixtureArchives {
		testutil.WriteBundleJar(t, testutil.RepositoryJar(repo, archive.group, archive.artifact, archive.version), archive.symbolicName, archive.bundle)
	}
	lister := fixtureLister{reportsDir: filepath.Join(root, "fixtures", "reports"), repo: repo}
	service := app.NewService()
	service.Lister = func(string, bool) ports.DependencyListPort { return lister }
	require.DirExists(t, lister.reportsDir)
	return service, repo
}
