package collector

import (
	"strings"

	"github.com/VKCOM/php-parser/pkg/ast"
	"github.com/VKCOM/php-parser/pkg/visitor/traverser"

	"github.com/atani/php-knip/internal/phpast"
)

// traverseInto continues the walk into a node this visitor does not itself
// override a handler for, after one of this visitor's handlers has taken
// control of its parent's recursion.
func (v *collectorVisitor) traverseInto(node ast.Vertex) {
	if node == nil {
		return
	}
	traverser.NewTraverser(v).Traverse(node)
}

func (v *collectorVisitor) traverseArgs(args []ast.Vertex) {
	for _, a := range args {
		v.traverseInto(argExpr(a))
	}
}

// argExpr unwraps a call argument node to the expression it carries.
func argExpr(node ast.Vertex) ast.Vertex {
	if arg, ok := node.(*ast.Argument); ok {
		return arg.Expr
	}
	return node
}

// stringArgLiteral returns the literal string value of the call argument
// at index, used for the name in define(LIT, ...).
func stringArgLiteral(args []ast.Vertex, index int) (string, bool) {
	if index >= len(args) {
		return "", false
	}
	return scalarStringValue(argExpr(args[index]))
}

// ExprNew handles instantiation expressions ("new ClassName(...)").
func (v *collectorVisitor) ExprNew(n *ast.ExprNew) {
	if classDecl, ok := n.Class.(*ast.StmtClass); ok {
		// Anonymous class instantiation: the class itself is skipped (spec
		// §4.1), but its body may still contain references worth keeping.
		v.traverseChildren(classDecl.Stmts)
		v.traverseArgs(n.Args)
		return
	}

	resolved, dynamic := v.resolveClassTarget(n.Class)
	ref := phpast.Reference{Kind: phpast.RefNew, Line: lineOf(n)}
	if dynamic {
		ref.IsDynamic = true
	} else {
		ref.SymbolName = resolved
	}
	v.addReference(ref)
	v.traverseArgs(n.Args)
}

// ExprInstanceOf handles `$x instanceof Class`.
func (v *collectorVisitor) ExprInstanceOf(n *ast.ExprInstanceOf) {
	resolved, dynamic := v.resolveClassTarget(n.Class)
	ref := phpast.Reference{Kind: phpast.RefInstanceOf, Line: lineOf(n)}
	if dynamic {
		ref.IsDynamic = true
	} else {
		ref.SymbolName = resolved
	}
	v.addReference(ref)
	v.traverseInto(n.Expr)
}

// ExprStaticCall handles `Class::method(...)`.
func (v *collectorVisitor) ExprStaticCall(n *ast.ExprStaticCall) {
	classResolved, classDynamic := v.resolveClassTarget(n.Class)
	method, methodKnown := memberNameOf(n.Call)

	ref := phpast.Reference{Kind: phpast.RefStaticCall, Line: lineOf(n)}
	if !classDynamic {
		ref.SymbolParent = classResolved
	}
	if methodKnown {
		ref.SymbolName = method
	} else {
		ref.IsDynamic = true
	}
	v.addReference(ref)
	v.traverseArgs(n.Args)
}

// ExprStaticPropertyFetch handles `Class::$prop`.
func (v *collectorVisitor) ExprStaticPropertyFetch(n *ast.ExprStaticPropertyFetch) {
	classResolved, classDynamic := v.resolveClassTarget(n.Class)
	prop, propKnown := memberNameOf(n.Prop)

	ref := phpast.Reference{Kind: phpast.RefStaticProperty, Line: lineOf(n)}
	if !classDynamic {
		ref.SymbolParent = classResolved
	}
	if propKnown {
		ref.SymbolName = prop
	} else {
		ref.IsDynamic = true
	}
	v.addReference(ref)
}

// ExprClassConstFetch handles `Class::CONST` and `Class::class`.
func (v *collectorVisitor) ExprClassConstFetch(n *ast.ExprClassConstFetch) {
	constName := extractIdentifier(n.Const)
	classResolved, classDynamic := v.resolveClassTarget(n.Class)

	if constName == "class" {
		ref := phpast.Reference{Kind: phpast.RefClassString, Line: lineOf(n)}
		if classDynamic {
			ref.IsDynamic = true
		} else {
			ref.SymbolName = classResolved
		}
		v.addReference(ref)
		return
	}

	ref := phpast.Reference{Kind: phpast.RefConstant, Line: lineOf(n)}
	if !classDynamic {
		ref.SymbolParent = classResolved
	}
	if constName != "" {
		ref.SymbolName = constName
	} else {
		ref.IsDynamic = true
	}
	v.addReference(ref)
}

// ExprConstFetch handles a bare constant reference, e.g. `MY_CONST`.
// `true`/`false`/`null` are parsed as constant fetches in some PHP
// versions; these are excluded since they are not user-defined constants.
func (v *collectorVisitor) ExprConstFetch(n *ast.ExprConstFetch) {
	name := extractName(n.Const)
	if name == "" {
		return
	}
	switch strings.ToLower(strings.TrimPrefix(name, `\`)) {
	case "true", "false", "null":
		return
	}
	v.addReference(phpast.Reference{Kind: phpast.RefConstant, SymbolName: v.resolve(strings.TrimPrefix(name, `\`)), Line: lineOf(n)})
}

// ExprFunctionCall handles `name(...)`. A call to the bare global `define`
// with a literal first argument is a Constant definition, not a function
// call reference, and a variable-target call ("$fn()") is dynamic.
func (v *collectorVisitor) ExprFunctionCall(n *ast.ExprFunctionCall) {
	name := extractName(n.Function)

	if name == "define" {
		if lit, ok := stringArgLiteral(n.Args, 0); ok {
			sym := phpast.Symbol{
				Kind:      phpast.KindConstant,
				Name:      lit,
				Namespace: "",
				StartLine: lineOf(n),
				EndLine:   lineOf(n),
			}
			sym.SetMetadata("definedWith", "define")
			v.addSymbol(sym)
			v.traverseArgs(n.Args)
			return
		}
	}

	ref := phpast.Reference{Kind: phpast.RefFunctionCall, Line: lineOf(n)}
	if name == "" {
		ref.IsDynamic = true
	} else {
		ref.SymbolName = v.resolve(strings.TrimPrefix(name, `\`))
	}
	v.addReference(ref)
	v.traverseArgs(n.Args)
}

// ExprMethodCall handles `$obj->method(...)`; symbol_parent is unknown for
// instance calls, so only symbol_name is recorded.
func (v *collectorVisitor) ExprMethodCall(n *ast.ExprMethodCall) {
	method, methodKnown := memberNameOf(n.Method)
	ref := phpast.Reference{Kind: phpast.RefMethodCall, Line: lineOf(n)}
	if methodKnown {
		ref.SymbolName = method
	} else {
		ref.IsDynamic = true
	}
	v.addReference(ref)
	v.traverseInto(n.Var)
	v.traverseArgs(n.Args)
}

// ExprPropertyFetch handles `$obj->prop`.
func (v *collectorVisitor) ExprPropertyFetch(n *ast.ExprPropertyFetch) {
	prop, propKnown := memberNameOf(n.Prop)
	ref := phpast.Reference{Kind: phpast.RefPropertyAccess, Line: lineOf(n)}
	if propKnown {
		ref.SymbolName = prop
	} else {
		ref.IsDynamic = true
	}
	v.addReference(ref)
	v.traverseInto(n.Var)
}

// StmtCatch handles `catch (TypeA|TypeB $e) { ... }`: one Reference per
// caught type.
func (v *collectorVisitor) StmtCatch(n *ast.StmtCatch) {
	for _, t := range n.Types {
		resolved, dynamic := v.resolveClassTarget(t)
		ref := phpast.Reference{Kind: phpast.RefCatch, Line: lineOf(n)}
		if dynamic {
			ref.IsDynamic = true
		} else {
			ref.SymbolName = resolved
		}
		v.addReference(ref)
	}
	v.traverseChildren(n.Stmts)
}
</content>
