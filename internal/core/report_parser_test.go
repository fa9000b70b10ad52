package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"araqne-pkg/internal/types"
)

func TestParseDependencyLine(t *testing.T) {
	result := ParseDependencyLine("   org.araqne:araqne-api:jar:2.5.0:compile:/home/u/.m2/repository/org/araqne/araqne-api/2.5.0/araqne-api-2.5.0.jar")
	require.Equal(t, LineParsed, result.Status)

	artifact := result.Artifact
	assert.Equal(t, "org.araqne:araqne-api", artifact.Coordinate.String())
	assert.Equal(t, "jar", artifact.Type)
	assert.Equal(t, "2.5.0", artifact.Version.String())
	assert.Equal(t, types.ScopeCompile, artifact.Scope)
	assert.Equal(t, "/home/u/.m2/repository/org/araqne/araqne-api/2.5.0/araqne-api-2.5.0.jar", artifact.ArchivePath)
	assert.Empty(t, artifact.Classifier)
}

func TestParseDependencyLineKeepsColonsInPath(t *testing.T) {
	result := ParseDependencyLine(`org.slf4j:slf4j-api:jar:1.6.1:runtime:C:\Users\u\.m2\repository\slf4j-api-1.6.1.jar`)
	require.Equal(t, LineParsed, result.Status)
	assert.Equal(t, `C:\Users\u\.m2\repository\slf4j-api-1.6.1.jar`, result.Artifact.ArchivePath)
	assert.Equal(t, types.ScopeRuntime, result.Artifact.Scope)
}

func TestParseDependencyLineClassifierForm(t *testing.T) {
	result := ParseDependencyLine("org.example:native:jar:linux-x86_64:3.1:runtime:/p/native-3.1-linux-x86_64.jar")
	require.Equal(t, LineParsed, result.Status)
	assert.Equal(t, "linux-x86_64", result.Artifact.Classifier)
	assert.Equal(t, "3.1", result.Artifact.Version.String())
	assert.Equal(t, types.ScopeRuntime, result.Artifact.Scope)
	assert.Equal(t, "/p/native-3.1-linux-x86_64.jar", result.Artifact.ArchivePath)
}

func TestParseDependencyLineStripsAnnotations(t *testing.T) {
	tests := []string{
		"org.example:lib:jar:1.0:compile:/p/lib-1.0.jar -- module org.example.lib",
		"org.example:lib:jar:1.0:compile:/p/lib-1.0.jar (optional)",
		"org.example:lib:jar:1.0:compile:/p/lib-1.0.jar (optional) -- module org.example.lib [auto]",
	}
	for _, line := range tests {
		result := ParseDependencyLine(line)
		require.Equal(t, LineParsed, result.Status, line)
		assert.Equal(t, "/p/lib-1.0.jar", result.Artifact.ArchivePath, line)
	}
}

func TestParseDependencyLineRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineStatus
	}{
		{name: "blank", line: "", want: LineBlank},
		{name: "whitespace", line: "   \t", want: LineBlank},
		{name: "header", line: "The following files have been resolved:", want: LineMalformed},
		{name: "none", line: "   none", want: LineMalformed},
		{name: "five fields", line: "a:x:jar:1.0:compile", want: LineMalformed},
		{name: "empty group", line: ":x:jar:1.0:compile:/p/x.jar", want: LineMalformed},
		{name: "empty version", line: "a:x:jar::compile:/p/x.jar", want: LineMalformed},
		{name: "empty path", line: "a:x:jar:1.0:compile:", want: LineMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDependencyLine(tt.line).Status)
		})
	}
}

func TestParseDependencyLineCoordinateRoundTrip(t *testing.T) {
	lines := []string{
		"a:x:jar:1.0:compile:/p/x-1.0.jar",
		"org.apache.felix:org.apache.felix.ipojo:jar:1.8.0:compile:/p/ipojo.jar",
		"com.example:thing-with-dashes:bundle:0.1-SNAPSHOT:runtime:/p/thing.jar",
	}
	for _, line := range lines {
		result := ParseDependencyLine(line)
		require.Equal(t, LineParsed, result.Status)
		assert.True(t, len(line) > len(result.Artifact.Coordinate.String()))
		assert.Equal(t, line[:len(result.Artifact.Coordinate.String())], result.Artifact.Coordinate.String())
	}
}

func TestReportParserSharesVersionCache(t *testing.T) {
	parser := NewReportParser()
	parser.ParseLine("a:x:jar:1.0:compile:/p/x.jar")
	parser.ParseLine("a:y:jar:1.0:compile:/p/y.jar")
	parser.ParseLine("a:z:jar:2.0:compile:/p/z.jar")
	assert.Len(t, parser.versions.parsed, 2)
}
