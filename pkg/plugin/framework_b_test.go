package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/manifest"
)

func TestFrameworkBIsApplicableByLockFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "framework-b.lock"), []byte(""), 0o644))
	assert.True(t, FrameworkB{}.IsApplicable(dir, manifest.Manifest{}))
}

func TestFrameworkBIsApplicableByDependency(t *testing.T) {
	m := manifest.Manifest{Require: map[string]string{"framework-b/http-kernel": "^6.0"}}
	assert.True(t, FrameworkB{}.IsApplicable(t.TempDir(), m))
}

func TestFrameworkBAdditionalReferencesFromServiceYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "packages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "packages", "security.yaml"), []byte(`
services:
    App\Security\Voter\PostVoter:
        class: App\Security\Voter\PostVoter
`), 0o644))

	refs := FrameworkB{}.AdditionalReferences(dir)
	require.Len(t, refs, 1)
	assert.Equal(t, `App\Security\Voter\PostVoter`, refs[0].SymbolName)
}

func TestFrameworkBEntryPointsEnumeratesControllers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "Controller"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "Controller", "HomeController.php"), []byte("<?php\n"), 0o644))

	entries := FrameworkB{}.EntryPoints(dir)
	assert.Contains(t, entries, `App\Controller\HomeController`)
}
</content>
