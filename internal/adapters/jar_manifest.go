package adapters

import (
	"archive/zip"
	"bufio"
	"io"
	"strings"
	"sync"

	"araqne-pkg/internal/ports"
	"araqne-pkg/internal/types"
)

const (
	jarManifestName       = "META-INF/MANIFEST.MF"
	headerSymbolicName    = "Bundle-SymbolicName"
	headerBundleVersion   = "Bundle-Version"
	manifestContinuation  = ' '
	manifestAttributeStop = ";"
)

// JarManifestAdapter reads OSGi bundle headers from archive manifests.
// Lookups, including misses, are cached per archive path for the adapter's
// lifetime; callers take a fresh adapter per run.
type JarManifestAdapter struct {
	mu    sync.Mutex
	cache map[string]jarManifestEntry
}

type jarManifestEntry struct {
	identity types.BundleIdentity
	ok       bool
}

func NewJarManifestAdapter() *JarManifestAdapter {
	return &JarManifestAdapter{cache: map[string]jarManifestEntry{}}
}

func (a *JarManifestAdapter) Identity(archivePath string) (types.BundleIdentity, bool) {
	if strings.TrimSpace(archivePath) == "" {
		return types.BundleIdentity{}, false
	}
	a.mu.Lock()
	if entry, ok := a.cache[archivePath]; ok {
		a.mu.Unlock()
		return entry.identity, entry.ok
	}
	a.mu.Unlock()

	identity, ok := readBundleIdentity(archivePath)

	a.mu.Lock()
	a.cache[archivePath] = jarManifestEntry{identity: identity, ok: ok}
	a.mu.Unlock()
	return identity, ok
}

func readBundleIdentity(archivePath string) (types.BundleIdentity, bool) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return types.BundleIdentity{}, false
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != jarManifestName {
			continue
		}
		handle, err := file.Open()
		if err != nil {
			return types.BundleIdentity{}, false
		}
		headers, err := parseManifestHeaders(handle)
		_ = handle.Close()
		if err != nil {
			return types.BundleIdentity{}, false
		}
		identity := types.BundleIdentity{
			SymbolicName: headerValue(headers[headerSymbolicName]),
			Version:      headerValue(headers[headerBundleVersion]),
		}
		// Bundle-Version is optional; only the symbolic name makes a bundle.
		return identity, identity.Resolved()
	}
	return types.BundleIdentity{}, false
}

// parseManifestHeaders reads the main section of a jar manifest. Lines that
// start with a single space continue the previous header.
func parseManifestHeaders(r io.Reader) (map[string]string, error) {
	headers := map[string]string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var name string
	var value strings.Builder
	flush := func() {
		if name != "" {
			headers[name] = value.String()
		}
		name = ""
		value.Reset()
	}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if line[0] == manifestContinuation {
			if name != "" {
				value.WriteString(line[1:])
			}
			continue
		}
		flush()
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(key)
		value.WriteString(strings.TrimPrefix(rest, " "))
	}
	flush()
	return headers, scanner.Err()
}

func headerValue(raw string) string {
	value, _, _ := strings.Cut(raw, manifestAttributeStop)
	return strings.TrimSpace(value)
}

var _ ports.BundleIdentityPort = (*JarManifestAdapter)(nil)
