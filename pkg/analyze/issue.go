// Package analyze implements the ten dead-code analyzers: each scans
// the symbol table, builds a referenced set from the kinds relevant to
// it, and flags every symbol absent from that set after its own chain of
// exemptions. Shaped around a Violation{Rule, Message, Severity, Line, ...}
// idiom where each analyzer returns a flat list, generalized from "one
// validator over one page" to "ten analyzers over one project".
package analyze

// Kind is the closed set of issue kinds.
type Kind string

const (
	KindUnusedFiles         Kind = "unused-files"
	KindUnusedClasses       Kind = "unused-classes"
	KindUnusedInterfaces    Kind = "unused-interfaces"
	KindUnusedTraits        Kind = "unused-traits"
	KindUnusedMethods       Kind = "unused-methods"
	KindUnusedFunctions     Kind = "unused-functions"
	KindUnusedConstants     Kind = "unused-constants"
	KindUnusedProperties    Kind = "unused-properties"
	KindUnusedUseStatements Kind = "unused-use-statements"
	KindUnusedDependencies  Kind = "unused-dependencies"
)

// Severity is an issue's severity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one analyzer finding.
type Issue struct {
	Kind       Kind
	Severity   Severity
	Message    string
	File       string
	Line       int
	Symbol     string
	SymbolKind string
	Metadata   map[string]any
}

// Analyzer is one of the ten built-in analyzers; each is a pure
// function over its Context — analyzers never fail.
type Analyzer interface {
	Name() string
	Analyze(ctx *Context) []Issue
}

// MissingAnalyzer is a second, narrower reporting pass an Analyzer can
// optionally implement alongside Analyze: where Analyze flags declared
// things the project never uses, AnalyzeMissing flags used things the
// project never declared. DependencyAnalyzer is the only implementer —
// "missing dependency" has no "missing class" equivalent.
type MissingAnalyzer interface {
	AnalyzeMissing(ctx *Context) []Issue
}

// All returns the ten built-in analyzers in a fixed, stable order.
func All() []Analyzer {
	return []Analyzer{
		ClassAnalyzer{},
		InterfaceAnalyzer{},
		TraitAnalyzer{},
		MethodAnalyzer{},
		PropertyAnalyzer{},
		ConstantAnalyzer{},
		FunctionAnalyzer{},
		UseStatementAnalyzer{},
		FileAnalyzer{},
		DependencyAnalyzer{},
	}
}
</content>
