package analyze

import (
	"fmt"
	"strings"

	"github.com/atani/php-knip/internal/phpast"
)

// defaultEntryPointGlobs are the conventional entry points every project
// gets for free, independent of any active plugin.
var defaultEntryPointGlobs = []string{
	"bin/*",
	"public/*.php",
	"public/index.php",
	"index.php",
	"bootstrap.php",
	"bootstrap/*.php",
	"console/*",
	"cli/*",
	"artisan",
}

// topLevelKinds are the symbol kinds the File analyzer groups by file;
// class members (method/property/class_constant) don't count toward a
// file's "has a top-level declaration" test.
var topLevelKinds = []phpast.SymbolKind{
	phpast.KindClass, phpast.KindInterface, phpast.KindTrait,
	phpast.KindEnum, phpast.KindFunction, phpast.KindConstant,
}

// FileAnalyzer flags files whose top-level declarations are never
// referenced anywhere in the project.
type FileAnalyzer struct{}

func (FileAnalyzer) Name() string { return "file" }

func (FileAnalyzer) Analyze(ctx *Context) []Issue {
	referenced := newStringSet()
	for _, r := range ctx.References {
		if r.IsDynamic {
			continue
		}
		referenced.add(r.SymbolName)
		if r.SymbolParent != "" {
			referenced.add(r.SymbolParent + "::" + r.SymbolName)
			referenced.add(phpast.ShortName(r.SymbolParent) + "::" + r.SymbolName)
		}
	}

	entryGlobs := append([]string{}, defaultEntryPointGlobs...)
	entryGlobs = append(entryGlobs, ctx.Config.EntryPoints()...)
	entryGlobs = append(entryGlobs, ctx.PluginEntryPoints(ctx.ProjectRoot)...)

	var issues []Issue
	for _, file := range ctx.Table.Files() {
		var symbols []phpast.Symbol
		for _, sym := range ctx.Table.GetByFile(file) {
			if isTopLevelKind(sym.Kind) {
				symbols = append(symbols, sym)
			}
		}
		if len(symbols) == 0 {
			continue
		}

		relPath := stripBasePath(file, ctx.Config.BasePath())
		if matchAnyPathGlob(entryGlobs, relPath) {
			continue
		}
		if isFileExemptByGlob(ctx, relPath) || isFileExemptByGlob(ctx, file) {
			continue
		}

		anyUsed := false
		for _, sym := range symbols {
			if referenced.has(sym.FQN()) || referenced.has(sym.Name) {
				anyUsed = true
				break
			}
		}
		if anyUsed {
			continue
		}

		issues = append(issues, Issue{
			Kind:     KindUnusedFiles,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("file %q declares no symbol referenced anywhere in the project", file),
			File:     file,
			Line:     1,
		})
	}
	return issues
}

func isTopLevelKind(k phpast.SymbolKind) bool {
	for _, tk := range topLevelKinds {
		if tk == k {
			return true
		}
	}
	return false
}

func stripBasePath(path, basePath string) string {
	if basePath == "" {
		return path
	}
	trimmed := strings.TrimPrefix(path, basePath)
	return strings.TrimPrefix(trimmed, "/")
}
</content>
