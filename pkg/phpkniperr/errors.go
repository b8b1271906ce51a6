// Package phpkniperr defines the error taxonomy this tool raises: ConfigError is
// fatal and pre-analysis, ParseError and PluginExtractionError are
// non-fatal and recorded rather than propagated.
package phpkniperr

import "fmt"

// ConfigError wraps a fatal failure to read or parse manifest.json or
// lock.json. The host must abort before any analysis runs.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error reading %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError wraps err as a ConfigError for the given path.
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// ParseError records a per-file parse failure. The affected file's symbols
// and references never enter the symbol table; this is surfaced to the
// host as a diagnostic, never as an Issue.
type ParseError struct {
	FilePath string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q: %v", e.FilePath, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps err as a ParseError for the given file.
func NewParseError(filePath string, err error) *ParseError {
	return &ParseError{FilePath: filePath, Err: err}
}

// PluginExtractionError records a per-plugin, per-file extraction failure.
// It is absorbed silently by the plugin manager: the synthetic references
// that would have been produced are simply absent.
type PluginExtractionError struct {
	Plugin   string
	FilePath string
	Err      error
}

func (e *PluginExtractionError) Error() string {
	return fmt.Sprintf("plugin %q extraction error in %q: %v", e.Plugin, e.FilePath, e.Err)
}

func (e *PluginExtractionError) Unwrap() error { return e.Err }

// NewPluginExtractionError wraps err as a PluginExtractionError.
func NewPluginExtractionError(plugin, filePath string, err error) *PluginExtractionError {
	return &PluginExtractionError{Plugin: plugin, FilePath: filePath, Err: err}
}

// InternalInvariantError is reserved for bugs; analyzers may never raise it.
type InternalInvariantError struct {
	Msg string
}

func (e *InternalInvariantError) Error() string {
	return "internal invariant violated: " + e.Msg
}
</content>
