package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/manifest"
)

func TestDependsOnAnyMatchesExactName(t *testing.T) {
	m := manifest.Manifest{Require: map[string]string{"framework-a/core": "^1.0"}}
	assert.True(t, dependsOnAny(m, []string{"framework-a/core"}, nil))
	assert.False(t, dependsOnAny(m, []string{"other/pkg"}, nil))
}

func TestDependsOnAnyMatchesGlob(t *testing.T) {
	m := manifest.Manifest{RequireDev: map[string]string{"framework-a-vendor/telescope": "^4.0"}}
	assert.True(t, dependsOnAny(m, nil, []string{"framework-a-vendor/*"}))
}

func TestPathToNamespacedFQN(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "app", "Http", "Controllers")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	path := filepath.Join(sub, "HomeController.php")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	fqn := pathToNamespacedFQN(dir, "app/Http/Controllers", `App\Http\Controllers`, path)
	assert.Equal(t, `App\Http\Controllers\HomeController`, fqn)
}

func TestGlobFilesReturnsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	f := filepath.Join(dir, "config", "app.php")
	require.NoError(t, os.WriteFile(f, []byte(""), 0o644))

	matches := globFiles(dir, "config/*.php")
	require.Len(t, matches, 1)
	assert.Equal(t, f, matches[0])
}

func TestGlobFilesReturnsEmptyOnNoMatches(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, globFiles(dir, "nonexistent/*.php"))
}
</content>
