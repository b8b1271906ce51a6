package autoload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/manifest"
)

func projectFixture() manifest.Project {
	return manifest.Project{
		Manifest: manifest.Manifest{
			Name: "acme/widgets",
			Autoload: manifest.Autoload{
				PSR4: map[string]manifest.PathList{
					`Acme\Widgets\`: {"src/"},
				},
			},
		},
		Lock: manifest.Lock{
			Packages: []manifest.LockPackage{
				{
					Name: "psr/log",
					Autoload: manifest.Autoload{
						PSR4: map[string]manifest.PathList{`Psr\Log\`: {"src/"}},
					},
				},
				{
					Name: "monolog/monolog",
					Autoload: manifest.Autoload{
						PSR4: map[string]manifest.PathList{`Monolog\`: {"src/Monolog/"}},
					},
				},
			},
		},
	}
}

func TestResolveClassLongestPrefixWins(t *testing.T) {
	r := Build(projectFixture())

	assert.Equal(t, "psr/log", r.ResolveClass(`Psr\Log\LoggerInterface`))
	assert.Equal(t, "monolog/monolog", r.ResolveClass(`Monolog\Handler\StreamHandler`))
	assert.Equal(t, "acme/widgets", r.ResolveClass(`Acme\Widgets\Foo`))
}

func TestResolveClassUnknownReturnsEmpty(t *testing.T) {
	r := Build(projectFixture())
	assert.Equal(t, "", r.ResolveClass(`Unrelated\Thing`))
}

func TestResolveFunctionUsesNamespacePortion(t *testing.T) {
	r := Build(projectFixture())
	assert.Equal(t, "psr/log", r.ResolveFunction(`Psr\Log\debug`))
}

func TestIsProjectClass(t *testing.T) {
	r := Build(projectFixture())
	assert.True(t, r.IsProjectClass(`Acme\Widgets\Foo`))
	assert.False(t, r.IsProjectClass(`Psr\Log\LoggerInterface`))
}

func TestIsProjectClassUsesSentinelWhenManifestUnnamed(t *testing.T) {
	proj := projectFixture()
	proj.Manifest.Name = ""
	r := Build(proj)
	assert.True(t, r.IsProjectClass(`Acme\Widgets\Foo`))
}

func TestLongestPrefixPreferredOverShorterOverlap(t *testing.T) {
	proj := manifest.Project{
		Lock: manifest.Lock{
			Packages: []manifest.LockPackage{
				{Name: "acme/core", Autoload: manifest.Autoload{PSR4: map[string]manifest.PathList{`Acme\`: {"src/"}}}},
				{Name: "acme/widgets", Autoload: manifest.Autoload{PSR4: map[string]manifest.PathList{`Acme\Widgets\`: {"src/"}}}},
			},
		},
	}
	r := Build(proj)
	assert.Equal(t, "acme/widgets", r.ResolveClass(`Acme\Widgets\Button`))
	assert.Equal(t, "acme/core", r.ResolveClass(`Acme\Other`))
}

func TestLoadClassmapOverridesPrefixResolution(t *testing.T) {
	r := Build(projectFixture())
	dir := t.TempDir()
	classmapPath := filepath.Join(dir, "classmap.php")
	vendorDir := filepath.Join(dir, "vendor")
	content := `Psr\Log\NullLogger => ` + vendorDir + `/psr/log/src/NullLogger.php` + "\n"
	require.NoError(t, os.WriteFile(classmapPath, []byte(content), 0o644))

	require.NoError(t, r.LoadClassmap(classmapPath, vendorDir))
	assert.Equal(t, "psr/log", r.ResolveClass(`Psr\Log\NullLogger`))
}
</content>
