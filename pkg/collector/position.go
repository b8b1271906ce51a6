package collector

import (
	"github.com/VKCOM/php-parser/pkg/ast"
	"github.com/VKCOM/php-parser/pkg/position"
)

// getPosition returns the source position of the node kinds the collector
// needs a line number for. Every node.Position field is accessed directly,
// the same way the grounding reference file reads n.Position.StartLine.
func getPosition(node ast.Vertex) *position.Position {
	switch n := node.(type) {
	case *ast.StmtNamespace:
		return n.Position
	case *ast.StmtUse:
		return n.Position
	case *ast.StmtClass:
		return n.Position
	case *ast.StmtInterface:
		return n.Position
	case *ast.StmtTrait:
		return n.Position
	case *ast.StmtEnum:
		return n.Position
	case *ast.EnumCase:
		return n.Position
	case *ast.StmtFunction:
		return n.Position
	case *ast.StmtClassMethod:
		return n.Position
	case *ast.StmtProperty:
		return n.Position
	case *ast.StmtConstant:
		return n.Position
	case *ast.StmtConstList:
		return n.Position
	case *ast.ExprNew:
		return n.Position
	case *ast.ExprStaticCall:
		return n.Position
	case *ast.ExprStaticPropertyFetch:
		return n.Position
	case *ast.ExprClassConstFetch:
		return n.Position
	case *ast.ExprFunctionCall:
		return n.Position
	case *ast.ExprMethodCall:
		return n.Position
	case *ast.ExprPropertyFetch:
		return n.Position
	case *ast.ExprInstanceOf:
		return n.Position
	case *ast.StmtCatch:
		return n.Position
	}
	return nil
}
</content>
