package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atani/php-knip/pkg/phpkniperr"
)

// Project bundles the decoded manifest and lock together, since almost
// every downstream consumer (the autoload resolver, the dependency
// analyzer) needs both at once.
type Project struct {
	Manifest Manifest
	Lock     Lock
}

// Load reads manifest.json and lock.json from the given paths and returns
// the decoded Project. A missing file or a JSON parse failure on either
// one is a fatal ConfigError raised before any analysis runs; there is no
// tolerant variant that treats a missing lock file as "no lock".
func Load(manifestPath, lockPath string) (*Project, error) {
	manifestData, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, phpkniperr.NewConfigError(manifestPath, fmt.Errorf("read manifest: %w", err))
	}
	var m Manifest
	if err := json.Unmarshal(manifestData, &m); err != nil {
		return nil, phpkniperr.NewConfigError(manifestPath, fmt.Errorf("parse manifest JSON: %w", err))
	}

	lockData, err := os.ReadFile(lockPath)
	if err != nil {
		return nil, phpkniperr.NewConfigError(lockPath, fmt.Errorf("read lock: %w", err))
	}
	var l Lock
	if err := json.Unmarshal(lockData, &l); err != nil {
		return nil, phpkniperr.NewConfigError(lockPath, fmt.Errorf("parse lock JSON: %w", err))
	}

	return &Project{Manifest: m, Lock: l}, nil
}
</content>
