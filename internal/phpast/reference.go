package phpast

// ReferenceKind is the closed set of reference kinds the collector,
// analyzers and plugins agree on.
type ReferenceKind string

const (
	RefNew             ReferenceKind = "new"
	RefExtends         ReferenceKind = "extends"
	RefImplements      ReferenceKind = "implements"
	RefUseTrait        ReferenceKind = "use_trait"
	RefUseImport       ReferenceKind = "use_import"
	RefStaticCall      ReferenceKind = "static_call"
	RefStaticProperty  ReferenceKind = "static_property"
	RefConstant        ReferenceKind = "constant"
	RefFunctionCall    ReferenceKind = "function_call"
	RefMethodCall      ReferenceKind = "method_call"
	RefPropertyAccess  ReferenceKind = "property_access"
	RefInstanceOf      ReferenceKind = "instanceof"
	RefTypeHint        ReferenceKind = "type_hint"
	RefReturnType      ReferenceKind = "return_type"
	RefCatch           ReferenceKind = "catch"
	RefClassString     ReferenceKind = "class_string"
)

// DynamicSentinel marks a reference whose target could not be determined
// statically.
const DynamicSentinel = "(dynamic)"

// Reference represents one use site.
type Reference struct {
	Kind ReferenceKind

	// SymbolName is the referenced name as written, after alias/namespace
	// resolution. Never empty; DynamicSentinel when unresolved.
	SymbolName string

	// SymbolParent is the class FQN for member-like references, when known.
	SymbolParent string

	FilePath string
	Line     int

	// Context names where the reference lives, e.g. "App\\Svc::method" or
	// "function".
	Context string

	IsDynamic bool

	Metadata map[string]any
}

// SetMetadata assigns a metadata entry, allocating the map on first use.
func (r *Reference) SetMetadata(key string, value any) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]any)
	}
	r.Metadata[key] = value
}

// StringLiterals returns the metadata["stringLiterals"] slice, if present,
// used by the function analyzer's callback-string sweep.
func (r Reference) StringLiterals() []string {
	v, ok := r.Metadata["stringLiterals"]
	if !ok {
		return nil
	}
	lits, _ := v.([]string)
	return lits
}

// ImportKind is the subkind of a use-import, mirroring the parser's
// class|function|constant distinction.
type ImportKind string

const (
	ImportClass    ImportKind = "class"
	ImportFunction ImportKind = "function"
	ImportConstant ImportKind = "constant"
)

// Import is one per-file import record (recorded once per use statement).
type Import struct {
	FQN   string
	Alias string
	Line  int
	Kind  ImportKind
}
</content>
