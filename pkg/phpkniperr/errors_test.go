package phpkniperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigErrorUnwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := NewConfigError("manifest.json", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "manifest.json")
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("unexpected token")
	err := NewParseError("src/Broken.php", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "src/Broken.php")
}

func TestPluginExtractionErrorUnwrap(t *testing.T) {
	inner := errors.New("regex scan failed")
	err := NewPluginExtractionError("framework-c", "wp-content/plugin.php", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "framework-c")
}
</content>
