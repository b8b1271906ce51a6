package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/atani/php-knip/pkg/discovery"
	"github.com/atani/php-knip/pkg/host"
	"github.com/atani/php-knip/pkg/hostconfig"
	"github.com/atani/php-knip/pkg/logging"
	"github.com/atani/php-knip/pkg/plugin"
)

// commonFlags are the flags shared by analyze, watch, and serve.
type commonFlags struct {
	ProjectRoot string
	ConfigPath  string
	Manifest    string
	Lock        string
	Framework   string
	LogLevel    string
}

// parseCommonFlags consumes the flags commonFlags recognizes and returns
// whatever positional/unrecognized arguments remain, in order.
func parseCommonFlags(args []string) (commonFlags, []string) {
	flags := commonFlags{ProjectRoot: "."}
	var rest []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--project":
			i++
			if i < len(args) {
				flags.ProjectRoot = args[i]
			}
		case "--config":
			i++
			if i < len(args) {
				flags.ConfigPath = args[i]
			}
		case "--manifest":
			i++
			if i < len(args) {
				flags.Manifest = args[i]
			}
		case "--lock":
			i++
			if i < len(args) {
				flags.Lock = args[i]
			}
		case "--framework":
			i++
			if i < len(args) {
				flags.Framework = args[i]
			}
		case "--log-level":
			i++
			if i < len(args) {
				flags.LogLevel = args[i]
			}
		default:
			rest = append(rest, args[i])
		}
	}
	return flags, rest
}

func resolveRelative(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// newLogger builds the shared slog.Logger, honoring --log-level.
func newLogger(flags commonFlags) *slog.Logger {
	cfg := logging.DefaultConfig()
	if flags.LogLevel != "" {
		cfg.Level = logging.Level(flags.LogLevel)
	}
	return logging.New(cfg)
}

// registerFrameworkPlugins wires in the three built-in framework
// plugins; a bare plugin.NewManager() would never activate any of them.
func registerFrameworkPlugins(mgr *plugin.Manager) {
	mgr.RegisterPlugin(plugin.FrameworkA{})
	mgr.RegisterPlugin(plugin.FrameworkB{})
	mgr.RegisterPlugin(plugin.FrameworkC{})
}

// buildPipeline resolves `.phpknip.yaml`, applies flag overrides, and
// returns a ready-to-run host.Pipeline whose Logger is built from
// --log-level (the caller closes nothing; Pipeline.Run owns no resources beyond the
// worker pool it starts and stops internally).
func buildPipeline(flags commonFlags) (*host.Pipeline, error) {
	projectRoot, err := filepath.Abs(flags.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(projectRoot, ".phpknip.yaml")
	} else {
		configPath = resolveRelative(projectRoot, configPath)
	}

	file, err := hostconfig.Load(configPath)
	if err != nil {
		return nil, err
	}

	overrides := hostconfig.Overrides{Framework: flags.Framework}

	manifestPath := flags.Manifest
	if manifestPath == "" {
		manifestPath = file.ManifestPath
	}
	if manifestPath == "" {
		manifestPath = "manifest.json"
	}
	manifestPath = resolveRelative(projectRoot, manifestPath)

	lockPath := flags.Lock
	if lockPath == "" {
		lockPath = file.LockPath
	}
	if lockPath == "" {
		lockPath = "lock.json"
	}
	lockPath = resolveRelative(projectRoot, lockPath)

	plugins := plugin.NewManager()
	registerFrameworkPlugins(plugins)

	logger := newLogger(flags)

	return &host.Pipeline{
		ProjectRoot:   projectRoot,
		ManifestPath:  manifestPath,
		LockPath:      lockPath,
		Config:        file.ToAnalyzeConfig(overrides),
		FrameworkHint: file.FrameworkHint(overrides),
		Discovery:     discovery.Config{Exclude: file.Exclude},
		Plugins:       plugins,
		Logger:        logger,
	}, nil
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "phpknip: %v\n", err)
	os.Exit(1)
}
</content>
