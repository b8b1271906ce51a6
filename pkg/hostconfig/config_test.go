package hostconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	f, err := Load(filepath.Join(dir, ".phpknip.yaml"))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".phpknip.yaml")
	content := `
basePath: src
entry_points:
  - "bin/*"
framework: framework-a
ignore:
  symbols:
    - "App\\Generated\\*"
  paths:
    - "tests/**"
  dependencies:
    - "roave/*"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src", f.BasePath)
	assert.Equal(t, []string{"bin/*"}, f.EntryPoints)
	assert.Equal(t, "framework-a", f.Framework)
	assert.Equal(t, []string{`App\Generated\*`}, f.Ignore.Symbols)
	assert.Equal(t, []string{"tests/**"}, f.Ignore.Paths)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".phpknip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("basePath: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestToAnalyzeConfigCLIOverrideWinsOverFile(t *testing.T) {
	f := File{BasePath: "src"}
	cfg := f.ToAnalyzeConfig(Overrides{BasePath: "app"})

	assert.Equal(t, "app", cfg.BasePath())
}

func TestFrameworkHintDefaultsToAuto(t *testing.T) {
	f := File{}
	assert.Equal(t, "auto", f.FrameworkHint(Overrides{}))
}

func TestFrameworkHintPrefersCLIOverride(t *testing.T) {
	f := File{Framework: "framework-b"}
	assert.Equal(t, "framework-c", f.FrameworkHint(Overrides{Framework: "framework-c"}))
}
</content>
