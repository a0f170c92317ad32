package fieldset

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
)

// renderExpr prints an expression for diagnostics. Rendering is best-effort:
// when go/printer balks, the node's Go type stands in.
func renderExpr(e ast.Expr) string {
	if e == nil {
		return "<nil>"
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), e); err != nil {
		return fmt.Sprintf("<%T>", e)
	}
	return buf.String()
}
