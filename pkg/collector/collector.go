// Package collector drives github.com/VKCOM/php-parser over one file's
// source and produces the Symbol and Reference records,
// using the visitor.Null + traverser.NewTraverser(...).Traverse(...)
// pattern grounded on
// other_examples/64bcfd96_doITmagic-rag-code-mcp__internal-ragcode-analyzers-php-analyzer.go.go.
package collector

import (
	"fmt"

	"github.com/VKCOM/php-parser/pkg/ast"
	"github.com/VKCOM/php-parser/pkg/conf"
	"github.com/VKCOM/php-parser/pkg/errors"
	"github.com/VKCOM/php-parser/pkg/parser"
	"github.com/VKCOM/php-parser/pkg/version"
	"github.com/VKCOM/php-parser/pkg/visitor"
	"github.com/VKCOM/php-parser/pkg/visitor/traverser"

	"github.com/atani/php-knip/internal/phpast"
)

// phpVersion is the dialect the parser targets; PHP 8.x covers the syntax
// every spec node kind needs (enums, union/intersection types, readonly).
var phpVersion = &version.Version{Major: 8, Minor: 1}

// Result is everything one file contributes to the pipeline.
type Result struct {
	Symbols    []phpast.Symbol
	References []phpast.Reference
	Imports    []phpast.Import
}

// CollectFile parses content and walks it once, producing both the symbol
// definitions and the name references analyzers rely on. Parser
// errors are returned to the caller (who wraps them as phpkniperr.ParseError
// as a ParseError); a non-nil error means the file contributes nothing to the
// table.
func CollectFile(filePath string, content []byte) (Result, error) {
	var parseErrors []*errors.Error
	root, err := parser.Parse(content, conf.Config{
		Version: phpVersion,
		ErrorHandlerFunc: func(e *errors.Error) {
			parseErrors = append(parseErrors, e)
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", filePath, err)
	}
	if len(parseErrors) > 0 {
		return Result{}, fmt.Errorf("parse %s: %s (and %d more)", filePath, parseErrors[0].String(), len(parseErrors)-1)
	}
	if root == nil {
		return Result{}, nil
	}

	v := newCollector(filePath)
	traverser.NewTraverser(v).Traverse(root)

	return Result{Symbols: v.symbols, References: v.references, Imports: v.imports}, nil
}

// collectorVisitor carries the ambient scope of collection: current
// namespace, current class FQN, and the per-namespace alias map. It is
// reset per file by always constructing a fresh one in CollectFile, so
// scope from file k never leaks into file k+1.
type collectorVisitor struct {
	visitor.Null

	filePath         string
	currentNamespace string
	currentClass     string
	currentContext   string // "" | "function" | "Class::method"
	aliases          phpast.AliasMap

	symbols    []phpast.Symbol
	references []phpast.Reference
	imports    []phpast.Import
}

func newCollector(filePath string) *collectorVisitor {
	return &collectorVisitor{
		filePath: filePath,
		aliases:  phpast.AliasMap{},
	}
}

func (v *collectorVisitor) addSymbol(s phpast.Symbol) {
	s.FilePath = v.filePath
	if s.EndLine == 0 {
		s.EndLine = s.StartLine
	}
	v.symbols = append(v.symbols, s)
}

func (v *collectorVisitor) addReference(r phpast.Reference) {
	r.FilePath = v.filePath
	r.Context = v.currentContext
	if r.SymbolName == "" {
		r.SymbolName = phpast.DynamicSentinel
		r.IsDynamic = true
	}
	v.references = append(v.references, r)
}

// resolve runs the name-resolution algorithm against the current
// ambient scope.
func (v *collectorVisitor) resolve(name string) string {
	return phpast.ResolveName(name, v.currentNamespace, v.aliases)
}

// resolveClassTarget resolves a class-position name, special-casing
// self/static (-> current class) and parent (-> literal "parent").
func (v *collectorVisitor) resolveClassTarget(node ast.Vertex) (name string, dynamic bool) {
	raw := extractName(node)
	if raw == "" {
		return "", true
	}
	switch raw {
	case "self", "static":
		if v.currentClass != "" {
			return v.currentClass, false
		}
		return raw, false
	case "parent":
		return "parent", false
	}
	return v.resolve(raw), false
}

func lineOf(node ast.Vertex) int {
	pos := getPosition(node)
	if pos == nil {
		return 0
	}
	return pos.StartLine
}

func endLineOf(node ast.Vertex) int {
	pos := getPosition(node)
	if pos == nil {
		return 0
	}
	return pos.EndLine
}
</content>
