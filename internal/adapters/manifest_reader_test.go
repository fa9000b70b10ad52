package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"araqne-pkg/internal/types"
)

func TestManifestReaderAdapter_RoundTripsRenderedManifest(t *testing.T) {
	entries := []types.ManifestEntry{
		manifestEntry("org.araqne", "araqne-logdb", "2.4.1", "org.araqne.logdb", "2.4.1"),
		manifestEntry("commons-io", "commons-io", "2.4", "org.apache.commons.io", "2.4.0"),
	}
	path := filepath.Join(t.TempDir(), "bundle.pkg")
	require.NoError(t, os.WriteFile(path, []byte(RenderManifest(entries)), 0644))

	manifest, err := NewManifestReaderAdapter().ReadManifest(path)
	require.NoError(t, err)
	want := types.PackageManifest{
		Bundles: []types.ManifestBundleLine{
			{SymbolicName: "org.apache.commons.io", Version: "2.4.0"},
			{SymbolicName: "org.araqne.logdb", Version: "2.4.1"},
		},
		Start: []string{"org.apache.commons.io", "org.araqne.logdb"},
		Maven: []types.ManifestMavenLine{
			{Group: "commons-io", Artifact: "commons-io", Version: "2.4"},
			{Group: "org.araqne", Artifact: "araqne-logdb", Version: "2.4.1"},
		},
	}
	if diff := cmp.Diff(want, manifest); diff != "" {
		t.Fatalf("unexpected manifest (-want +got):\n%s", diff)
	}
}

func TestParseManifestRejectsBadLines(t *testing.T) {
	cases := map[string]string{
		"before section":   "org.araqne.logdb 2.4.1\n",
		"unknown section":  "[bundles]\n",
		"short bundle":     "[bundle]\norg.araqne.logdb\n",
		"wide start":       "[start]\norg.araqne.logdb 2.4.1\n",
		"short maven line": "[maven]\norg.araqne araqne-logdb\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest(content)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestManifestReaderAdapter_MissingFile(t *testing.T) {
	_, err := NewManifestReaderAdapter().ReadManifest(filepath.Join(t.TempDir(), "missing.pkg"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
