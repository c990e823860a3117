package expr

import (
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ReferencedPaths parses expr and returns the dotted field paths it reads
// from RootVar, e.g. "_.user.id". Paths are sorted and unique. An expression
// that does not parse yields nil.
func (e *Evaluator) ReferencedPaths(expr string) []string {
	ast, issues := e.env.Parse(expr)
	if issues != nil && issues.Err() != nil {
		return nil
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil
	}

	found := map[string]struct{}{}
	walk(parsed.GetExpr(), found)

	paths := make([]string, 0, len(found))
	for p := range found {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// walk records the longest select chain rooted at RootVar for every branch.
func walk(e *exprpb.Expr, found map[string]struct{}) {
	if e == nil {
		return
	}
	switch e.ExprKind.(type) {
	case *exprpb.Expr_IdentExpr:
		if e.GetIdentExpr().GetName() == RootVar {
			found[RootVar] = struct{}{}
		}
	case *exprpb.Expr_SelectExpr:
		if path, ok := selectPath(e); ok {
			found[path] = struct{}{}
			return
		}
		walk(e.GetSelectExpr().GetOperand(), found)
	case *exprpb.Expr_CallExpr:
		call := e.GetCallExpr()
		walk(call.GetTarget(), found)
		for _, arg := range call.GetArgs() {
			walk(arg, found)
		}
	case *exprpb.Expr_ListExpr:
		for _, el := range e.GetListExpr().GetElements() {
			walk(el, found)
		}
	case *exprpb.Expr_StructExpr:
		for _, entry := range e.GetStructExpr().GetEntries() {
			walk(entry.GetMapKey(), found)
			walk(entry.GetValue(), found)
		}
	case *exprpb.Expr_ComprehensionExpr:
		c := e.GetComprehensionExpr()
		walk(c.GetIterRange(), found)
	}
}

// selectPath flattens a chain like _.a.b into "_.a.b". It reports false when
// the chain is not rooted at RootVar.
func selectPath(e *exprpb.Expr) (string, bool) {
	var fields []string
	for cur := e; cur != nil; {
		switch cur.ExprKind.(type) {
		case *exprpb.Expr_SelectExpr:
			sel := cur.GetSelectExpr()
			fields = append(fields, sel.GetField())
			cur = sel.GetOperand()
		case *exprpb.Expr_IdentExpr:
			if cur.GetIdentExpr().GetName() != RootVar {
				return "", false
			}
			fields = append(fields, RootVar)
			for i, j := 0, len(fields)-1; i < j; i, j = i+1, j-1 {
				fields[i], fields[j] = fields[j], fields[i]
			}
			return strings.Join(fields, "."), true
		default:
			return "", false
		}
	}
	return "", false
}
