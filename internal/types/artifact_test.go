package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateOrdering(t *testing.T) {
	assert.Equal(t, -1, NewCoordinate("a", "z").Compare(NewCoordinate("b", "a")))
	assert.Equal(t, -1, NewCoordinate("a", "a").Compare(NewCoordinate("a", "b")))
	assert.Equal(t, 0, NewCoordinate("a", "b").Compare(NewCoordinate("a", "b")))
	assert.True(t, NewCoordinate("", "").Less(NewCoordinate("a", "")))
}

func TestParseCoordinate(t *testing.T) {
	assert.Equal(t, NewCoordinate("org.araqne", "araqne-api"), ParseCoordinate(" org.araqne:araqne-api "))
	assert.Equal(t, NewCoordinate("org.araqne", "araqne-api"), ParseCoordinate("org.araqne:araqne-api:2.0"))
	assert.Equal(t, NewCoordinate("plain", ""), ParseCoordinate("plain"))
	assert.Equal(t, "org.araqne:araqne-api", ParseCoordinate("org.araqne:araqne-api").String())
}

func TestArtifactIdentityIgnoresScopeAndType(t *testing.T) {
	a := NewArtifact("a", "x", "jar", "1.0", ScopeCompile, "/p/one.jar")
	b := NewArtifact("a", "x", "bundle", "1.0.0", ScopeRuntime, "/p/two.jar")
	c := NewArtifact("a", "x", "jar", "1.1", ScopeCompile, "/p/one.jar")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, "a:x:1.0:compile", a.String())
	assert.Equal(t, "a:x:1", a.Key())
}

func TestArtifactKeyConsistentWithEqual(t *testing.T) {
	tests := []struct {
		a string
		b string
	}{
		{a: "1.0", b: "1.0.0"},
		{a: "2", b: "2.0.0.0"},
		{a: "1.0-RC2", b: "1.0.RC.2"},
		{a: "01.2", b: "1.2"},
		{a: "1.0.0-SNAPSHOT", b: "1-SNAPSHOT"},
		{a: "1.0", b: "1.0-SNAPSHOT"},
		{a: "1.10", b: "1.1"},
		{a: "1.0.a", b: "1.a"},
	}
	for _, tt := range tests {
		a := NewArtifact("g", "a", "jar", tt.a, ScopeCompile, "")
		b := NewArtifact("g", "a", "jar", tt.b, ScopeCompile, "")
		assert.Equal(t, a.Equal(b), a.Key() == b.Key(), "%s vs %s", tt.a, tt.b)
	}

	assert.Equal(t,
		NewArtifact("g", "a", "jar", "1.0", ScopeCompile, "").Key(),
		NewArtifact("g", "a", "jar", "1.0.0", ScopeRuntime, "").Key(),
	)
}

func TestArtifactCompareOrdersByCoordinateFirst(t *testing.T) {
	low := NewArtifact("a", "x", "jar", "9.0", ScopeCompile, "")
	high := NewArtifact("a", "y", "jar", "1.0", ScopeCompile, "")
	assert.Equal(t, -1, low.Compare(high))
}

func TestResolvedSetKeepsOneEntryPerCoordinate(t *testing.T) {
	set := NewResolvedSet()
	set.Put(NewArtifact("b", "x", "jar", "1.0", ScopeCompile, ""))
	set.Put(NewArtifact("a", "y", "jar", "1.0", ScopeCompile, ""))
	set.Put(NewArtifact("a", "y", "jar", "2.0", ScopeCompile, ""))

	require.Equal(t, 2, set.Len())
	got, ok := set.Get(NewCoordinate("a", "y"))
	require.True(t, ok)
	assert.Equal(t, "2.0", got.Version.String())

	var order []string
	for _, artifact := range set.Sorted() {
		order = append(order, artifact.Key())
	}
	if diff := cmp.Diff([]string{"a:y:2", "b:x:1"}, order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestKnownScope(t *testing.T) {
	for _, scope := range []string{"compile", "runtime", "provided", "test", "system", "import"} {
		assert.True(t, KnownScope(scope), scope)
	}
	assert.False(t, KnownScope("1.0"))
	assert.False(t, KnownScope(""))
}
