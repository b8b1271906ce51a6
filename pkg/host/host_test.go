package host

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/analyze"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePHP(t *testing.T, dir, relPath, content string) {
	t.Helper()
	full := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestPipelineRunFlagsUnusedClassAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writePHP(t, dir, "manifest.json", `{"name": "acme/widgets"}`)
	writePHP(t, dir, "lock.json", `{"packages": []}`)
	writePHP(t, dir, "src/Orphan.php", "<?php\nnamespace App;\n\nclass Orphan {}\n")
	writePHP(t, dir, "src/Used.php", "<?php\nnamespace App;\n\nclass Used {}\n")
	writePHP(t, dir, "src/main.php", "<?php\nnamespace App;\n\nnew Used();\n")

	pipeline := &Pipeline{
		ProjectRoot:  dir,
		ManifestPath: filepath.Join(dir, "manifest.json"),
		LockPath:     filepath.Join(dir, "lock.json"),
		NumWorkers:   2,
		Logger:       silentLogger(),
	}

	run, err := pipeline.Run()
	require.NoError(t, err)
	require.Empty(t, run.ParseErrors)

	var flagged []string
	for _, iss := range run.Issues {
		if iss.Kind == analyze.KindUnusedClasses {
			flagged = append(flagged, iss.Symbol)
		}
	}
	assert.Contains(t, flagged, `App\Orphan`)
	assert.NotContains(t, flagged, `App\Used`)
}

func TestPipelineRunSurfacesParseErrorsWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	writePHP(t, dir, "manifest.json", `{"name": "acme/widgets"}`)
	writePHP(t, dir, "lock.json", `{"packages": []}`)
	writePHP(t, dir, "src/Broken.php", "<?php\nclass {{{ broken")
	writePHP(t, dir, "src/Fine.php", "<?php\nclass Fine {}\n")

	pipeline := &Pipeline{
		ProjectRoot:  dir,
		ManifestPath: filepath.Join(dir, "manifest.json"),
		LockPath:     filepath.Join(dir, "lock.json"),
		NumWorkers:   2,
		Logger:       silentLogger(),
	}

	run, err := pipeline.Run()
	require.NoError(t, err)
	assert.NotEmpty(t, run.ParseErrors)

	found := false
	for _, sym := range run.Table.GetAll() {
		if sym.Name == "Fine" {
			found = true
		}
	}
	assert.True(t, found, "a parse failure in one file must not prevent others from being collected")
}

func TestPipelineRunMissingManifestIsFatal(t *testing.T) {
	dir := t.TempDir()
	pipeline := &Pipeline{
		ProjectRoot:  dir,
		ManifestPath: filepath.Join(dir, "manifest.json"),
		LockPath:     filepath.Join(dir, "lock.json"),
		Logger:       silentLogger(),
	}

	_, err := pipeline.Run()
	require.Error(t, err)
}

func TestPipelineRunSurfacesMissingDependency(t *testing.T) {
	dir := t.TempDir()
	writePHP(t, dir, "manifest.json", `{"name": "acme/widgets"}`)
	writePHP(t, dir, "lock.json", `{
		"packages": [
			{"name": "acme/logger", "autoload": {"psr-4": {"Acme\\Logger\\": "src/"}}}
		]
	}`)
	writePHP(t, dir, "src/main.php", "<?php\nnamespace App;\n\nnew \\Acme\\Logger\\Logger();\n")

	pipeline := &Pipeline{
		ProjectRoot:  dir,
		ManifestPath: filepath.Join(dir, "manifest.json"),
		LockPath:     filepath.Join(dir, "lock.json"),
		NumWorkers:   2,
		Logger:       silentLogger(),
	}

	run, err := pipeline.Run()
	require.NoError(t, err)

	var missing []string
	for _, iss := range run.Issues {
		if iss.Kind == analyze.KindUnusedDependencies && iss.Metadata["missing"] == true {
			missing = append(missing, iss.Symbol)
		}
	}
	assert.Contains(t, missing, "acme/logger")
}

func TestPipelineRunMissingLockIsFatal(t *testing.T) {
	dir := t.TempDir()
	writePHP(t, dir, "manifest.json", `{"name": "acme/widgets"}`)

	pipeline := &Pipeline{
		ProjectRoot:  dir,
		ManifestPath: filepath.Join(dir, "manifest.json"),
		LockPath:     filepath.Join(dir, "lock.json"),
		Logger:       silentLogger(),
	}

	_, err := pipeline.Run()
	require.Error(t, err)
}
</content>
