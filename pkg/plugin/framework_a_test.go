package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/manifest"
)

func TestFrameworkAIsApplicableBySentinelFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "artisan"), []byte(""), 0o644))

	assert.True(t, FrameworkA{}.IsApplicable(dir, manifest.Manifest{}))
}

func TestFrameworkAIsApplicableByDependency(t *testing.T) {
	dir := t.TempDir()
	m := manifest.Manifest{Require: map[string]string{"framework-a/core": "^1.0"}}
	assert.True(t, FrameworkA{}.IsApplicable(dir, m))
}

func TestFrameworkANotApplicableWithoutSignal(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FrameworkA{}.IsApplicable(dir, manifest.Manifest{}))
}

func TestFrameworkAAdditionalReferencesFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "app.php"), []byte(`<?php
return ['providers' => [App\Providers\AppServiceProvider::class]];
`), 0o644))

	refs := FrameworkA{}.AdditionalReferences(dir)
	require.Len(t, refs, 1)
	assert.Equal(t, `App\Providers\AppServiceProvider`, refs[0].SymbolName)
	assert.Equal(t, "framework-a-config", refs[0].Metadata["source"])
}

func TestFrameworkAIgnoreSymbolPatternsMatchControllers(t *testing.T) {
	mgr := NewManager()
	mgr.RegisterPlugin(FrameworkA{})
	mgr.Activate("/proj", manifest.Manifest{Require: map[string]string{"framework-a/core": "1.0"}}, "auto")

	assert.True(t, mgr.ShouldIgnoreSymbol(`App\Http\Controllers\HomeController`))
	assert.False(t, mgr.ShouldIgnoreSymbol(`App\Services\Mailer`))
}
</content>
