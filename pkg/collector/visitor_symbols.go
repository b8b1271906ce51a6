package collector

import (
	"strings"

	"github.com/VKCOM/php-parser/pkg/ast"
	"github.com/VKCOM/php-parser/pkg/visitor/traverser"

	"github.com/atani/php-knip/internal/phpast"
)

// magicMethods are exempt from unused-private-method reporting (spec
// §4.5.4) and flagged with metadata.isMagic here so the analyzer doesn't
// need to repeat the closed list.
var magicMethods = map[string]bool{
	"__construct": true, "__destruct": true, "__call": true,
	"__callStatic": true, "__get": true, "__set": true, "__isset": true,
	"__unset": true, "__sleep": true, "__wakeup": true, "__serialize": true,
	"__unserialize": true, "__toString": true, "__invoke": true,
	"__set_state": true, "__clone": true, "__debugInfo": true,
}

func (v *collectorVisitor) traverseChildren(stmts []ast.Vertex) {
	for _, stmt := range stmts {
		traverser.NewTraverser(v).Traverse(stmt)
	}
}

// StmtNamespace pushes current_namespace; for block-form namespaces it
// restores the prior namespace (and alias map) on leave, since the
// traverser gives no separate leave callback and this visitor takes
// control of recursion once it handles a node.
func (v *collectorVisitor) StmtNamespace(n *ast.StmtNamespace) {
	name := extractName(n.Name)

	if n.Stmts != nil {
		savedNS, savedAliases := v.currentNamespace, v.aliases
		v.currentNamespace = name
		v.aliases = phpast.AliasMap{}
		v.traverseChildren(n.Stmts)
		v.currentNamespace, v.aliases = savedNS, savedAliases
		return
	}

	v.currentNamespace = name
	v.aliases = phpast.AliasMap{}
}

// StmtUse handles top-level `use X as Y;` import statements: one use_import
// Reference per imported name plus a per-file Import record.
func (v *collectorVisitor) StmtUse(n *ast.StmtUseList) {
	listKind := useKindOf(n.Type)
	for _, use := range n.Uses {
		useNode, ok := use.(*ast.StmtUse)
		if !ok {
			continue
		}
		fqn := extractName(useNode.Use)
		if fqn == "" {
			continue
		}
		fqn = strings.TrimPrefix(fqn, `\`)

		alias := extractIdentifier(useNode.Alias)
		if alias == "" {
			alias = phpast.ShortName(fqn)
		}

		kind := listKind
		if itemKind := useKindOf(useNode.Type); itemKind != "" {
			kind = itemKind
		}
		if kind == "" {
			kind = string(phpast.ImportClass)
		}

		line := lineOf(n)
		if l := lineOf(useNode); l != 0 {
			line = l
		}

		v.imports = append(v.imports, phpast.Import{
			FQN: fqn, Alias: alias, Line: line, Kind: phpast.ImportKind(kind),
		})

		ref := phpast.Reference{Kind: phpast.RefUseImport, SymbolName: fqn, Line: line}
		ref.SetMetadata("alias", alias)
		v.addReference(ref)

		if kind == string(phpast.ImportClass) {
			v.aliases[alias] = fqn
		}
	}
}

func useKindOf(node ast.Vertex) string {
	switch extractIdentifier(node) {
	case "function":
		return string(phpast.ImportFunction)
	case "const":
		return string(phpast.ImportConstant)
	}
	return ""
}

// StmtClass handles class declarations, including anonymous classes, which
// are skipped.
func (v *collectorVisitor) StmtClass(n *ast.StmtClass) {
	name := extractIdentifier(n.Name)
	if name == "" {
		return // anonymous class: skipped
	}

	fqn := phpast.JoinFQN(v.currentNamespace, name)
	sym := phpast.Symbol{
		Kind:       phpast.KindClass,
		Name:       name,
		Namespace:  v.currentNamespace,
		IsAbstract: hasModifier(n.Modifiers, "abstract"),
		IsFinal:    hasModifier(n.Modifiers, "final"),
		StartLine:  lineOf(n),
		EndLine:    endLineOf(n),
	}

	if n.Extends != nil {
		extendsName := extractName(n.Extends)
		sym.Extends = append(sym.Extends, extendsName)
		resolved, dyn := v.resolveClassTarget(n.Extends)
		if !dyn {
			v.addReference(phpast.Reference{Kind: phpast.RefExtends, SymbolName: resolved, Line: lineOf(n)})
		}
	}
	for _, iface := range n.Implements {
		ifaceName := extractName(iface)
		sym.Implements = append(sym.Implements, ifaceName)
		resolved, dyn := v.resolveClassTarget(iface)
		if !dyn {
			v.addReference(phpast.Reference{Kind: phpast.RefImplements, SymbolName: resolved, Line: lineOf(n)})
		}
	}

	v.addSymbol(sym)

	savedClass := v.currentClass
	v.currentClass = fqn
	v.traverseChildren(n.Stmts)
	v.currentClass = savedClass
}

// StmtInterface handles interface declarations; multiple Extends entries
// are allowed.
func (v *collectorVisitor) StmtInterface(n *ast.StmtInterface) {
	name := extractIdentifier(n.Name)
	if name == "" {
		return
	}
	fqn := phpast.JoinFQN(v.currentNamespace, name)
	sym := phpast.Symbol{
		Kind:      phpast.KindInterface,
		Name:      name,
		Namespace: v.currentNamespace,
		StartLine: lineOf(n),
		EndLine:   endLineOf(n),
	}
	for _, ext := range n.Extends {
		extName := extractName(ext)
		sym.Extends = append(sym.Extends, extName)
		resolved, dyn := v.resolveClassTarget(ext)
		if !dyn {
			v.addReference(phpast.Reference{Kind: phpast.RefExtends, SymbolName: resolved, Line: lineOf(n)})
		}
	}
	v.addSymbol(sym)

	savedClass := v.currentClass
	v.currentClass = fqn
	v.traverseChildren(n.Stmts)
	v.currentClass = savedClass
}

// StmtTrait handles trait declarations.
func (v *collectorVisitor) StmtTrait(n *ast.StmtTrait) {
	name := extractIdentifier(n.Name)
	if name == "" {
		return
	}
	fqn := phpast.JoinFQN(v.currentNamespace, name)
	v.addSymbol(phpast.Symbol{
		Kind:      phpast.KindTrait,
		Name:      name,
		Namespace: v.currentNamespace,
		StartLine: lineOf(n),
		EndLine:   endLineOf(n),
	})

	savedClass := v.currentClass
	v.currentClass = fqn
	v.traverseChildren(n.Stmts)
	v.currentClass = savedClass
}

// StmtEnum handles enum declarations (PHP 8.1+), treated as a class-like
// container the same way StmtClass is.
func (v *collectorVisitor) StmtEnum(n *ast.StmtEnum) {
	name := extractIdentifier(n.Name)
	if name == "" {
		return
	}
	fqn := phpast.JoinFQN(v.currentNamespace, name)
	sym := phpast.Symbol{
		Kind:      phpast.KindEnum,
		Name:      name,
		Namespace: v.currentNamespace,
		StartLine: lineOf(n),
		EndLine:   endLineOf(n),
	}
	for _, iface := range n.Implements {
		ifaceName := extractName(iface)
		sym.Implements = append(sym.Implements, ifaceName)
		resolved, dyn := v.resolveClassTarget(iface)
		if !dyn {
			v.addReference(phpast.Reference{Kind: phpast.RefImplements, SymbolName: resolved, Line: lineOf(n)})
		}
	}
	v.addSymbol(sym)

	savedClass := v.currentClass
	v.currentClass = fqn
	v.traverseChildren(n.Stmts)
	v.currentClass = savedClass
}

// StmtTraitUse handles `use TraitA, TraitB;` inside a class body: records
// the trait names as written on the owning symbol's Uses list (done via
// the most-recently added class symbol) and emits a use_trait Reference
// per trait.
func (v *collectorVisitor) StmtTraitUse(n *ast.StmtTraitUse) {
	if v.currentClass == "" {
		return
	}
	for _, trait := range n.Traits {
		traitName := extractName(trait)
		if traitName == "" {
			continue
		}
		v.appendUseToCurrentClass(traitName)
		resolved, dyn := v.resolveClassTarget(trait)
		if !dyn {
			v.addReference(phpast.Reference{Kind: phpast.RefUseTrait, SymbolName: resolved, Line: lineOf(n)})
		}
	}
}

// appendUseToCurrentClass records a trait name on the owning class/trait
// symbol's Uses list. Symbols are value types accumulated in v.symbols, so
// this mutates the most recent symbol matching the current class FQN.
func (v *collectorVisitor) appendUseToCurrentClass(traitName string) {
	for i := len(v.symbols) - 1; i >= 0; i-- {
		if v.symbols[i].FQN() == v.currentClass {
			v.symbols[i].Uses = append(v.symbols[i].Uses, traitName)
			return
		}
	}
}

// StmtClassMethod handles method declarations under the current class.
func (v *collectorVisitor) StmtClassMethod(n *ast.StmtClassMethod) {
	if v.currentClass == "" {
		return
	}
	name := extractIdentifier(n.Name)
	if name == "" {
		return
	}

	sym := phpast.Symbol{
		Kind:       phpast.KindMethod,
		Name:       name,
		Parent:     v.currentClass,
		Visibility: phpast.Visibility(extractVisibility(n.Modifiers)),
		IsStatic:   hasModifier(n.Modifiers, "static"),
		IsAbstract: hasModifier(n.Modifiers, "abstract"),
		IsFinal:    hasModifier(n.Modifiers, "final"),
		StartLine:  lineOf(n),
		EndLine:    endLineOf(n),
	}
	if strings.HasPrefix(name, "__") && magicMethods[name] {
		sym.SetMetadata("isMagic", true)
	}
	v.addSymbol(sym)

	savedContext := v.currentContext
	v.currentContext = v.currentClass + "::" + name

	for _, param := range n.Params {
		v.collectParamTypeRef(param)
	}
	for _, t := range nonBuiltinTypeNames(n.ReturnType) {
		v.addReference(phpast.Reference{Kind: phpast.RefReturnType, SymbolName: v.resolve(t), Line: lineOf(n)})
	}

	v.traverseChildren(n.Stmts)
	v.currentContext = savedContext
}

// collectParamTypeRef emits a type_hint Reference for one method/function
// parameter, skipping built-in types.
func (v *collectorVisitor) collectParamTypeRef(param ast.Vertex) {
	p, ok := param.(*ast.Parameter)
	if !ok {
		return
	}
	for _, t := range nonBuiltinTypeNames(p.Type) {
		v.addReference(phpast.Reference{Kind: phpast.RefTypeHint, SymbolName: v.resolve(t), Line: lineOf(p)})
	}
}

// StmtFunction handles global function declarations.
func (v *collectorVisitor) StmtFunction(n *ast.StmtFunction) {
	name := extractIdentifier(n.Name)
	if name == "" {
		return
	}
	v.addSymbol(phpast.Symbol{
		Kind:      phpast.KindFunction,
		Name:      name,
		Namespace: v.currentNamespace,
		StartLine: lineOf(n),
		EndLine:   endLineOf(n),
	})

	savedContext := v.currentContext
	v.currentContext = "function"

	for _, param := range n.Params {
		v.collectParamTypeRef(param)
	}
	for _, t := range nonBuiltinTypeNames(n.ReturnType) {
		v.addReference(phpast.Reference{Kind: phpast.RefReturnType, SymbolName: v.resolve(t), Line: lineOf(n)})
	}

	v.traverseChildren(n.Stmts)
	v.currentContext = savedContext
}

// StmtPropertyList handles one `visibility [static] $a, $b;` declaration,
// emitting one Property symbol per declared name.
func (v *collectorVisitor) StmtPropertyList(n *ast.StmtPropertyList) {
	if v.currentClass == "" {
		return
	}
	visibility := phpast.Visibility(extractVisibility(n.Modifiers))
	isStatic := hasModifier(n.Modifiers, "static")

	for _, prop := range n.Props {
		stmtProp, ok := prop.(*ast.StmtProperty)
		if !ok {
			continue
		}
		name := extractVariableName(stmtProp.Var)
		if name == "" {
			continue
		}
		v.addSymbol(phpast.Symbol{
			Kind:       phpast.KindProperty,
			Name:       name,
			Parent:     v.currentClass,
			Visibility: visibility,
			IsStatic:   isStatic,
			StartLine:  lineOf(stmtProp),
			EndLine:    endLineOf(stmtProp),
		})
	}
}

// StmtClassConstList handles `[visibility] const A = 1, B = 2;` inside a
// class body.
func (v *collectorVisitor) StmtClassConstList(n *ast.StmtClassConstList) {
	if v.currentClass == "" {
		return
	}
	visibility := phpast.Visibility(extractVisibility(n.Modifiers))

	for _, c := range n.Consts {
		stmtConst, ok := c.(*ast.StmtConstant)
		if !ok {
			continue
		}
		name := extractIdentifier(stmtConst.Name)
		if name == "" {
			continue
		}
		v.addSymbol(phpast.Symbol{
			Kind:       phpast.KindClassConstant,
			Name:       name,
			Parent:     v.currentClass,
			Visibility: visibility,
			StartLine:  lineOf(stmtConst),
			EndLine:    endLineOf(stmtConst),
		})
	}
}

// StmtConstList handles a top-level `const FOO = 1;` statement.
func (v *collectorVisitor) StmtConstList(n *ast.StmtConstList) {
	if v.currentClass != "" {
		return // class constants go through StmtClassConstList
	}
	for _, c := range n.Consts {
		stmtConst, ok := c.(*ast.StmtConstant)
		if !ok {
			continue
		}
		name := extractIdentifier(stmtConst.Name)
		if name == "" {
			continue
		}
		sym := phpast.Symbol{
			Kind:      phpast.KindConstant,
			Name:      name,
			Namespace: v.currentNamespace,
			StartLine: lineOf(stmtConst),
			EndLine:   endLineOf(stmtConst),
		}
		sym.SetMetadata("definedWith", "const")
		v.addSymbol(sym)
	}
}
</content>
