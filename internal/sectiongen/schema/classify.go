package schema

import (
	"go/ast"

	"github.com/sublee/sectiongen/internal/codefmt"
)

// classify reports whether a field type is Option[T] of sectiongen and
// returns T. Other types are ignored without error, but an Option which does
// not take exactly one type argument is an error.
//
//	sectiongen.Option[int]         // eligible: int
//	sg.Option[map[string]bool]     // eligible: map[string]bool (aliased import)
//	Option[time.Duration]          // eligible under a dot import
//	*sectiongen.Option[int]        // ignored
//	[]sectiongen.Option[int]       // ignored
//	sectiongen.Option              // error: no type argument
//	sectiongen.Option[int, string] // error: two type arguments
//	sectiongen.Option[42]          // error: not a type
func (p *Parser) classify(rec *Record, name *ast.Ident, typ ast.Expr, imps Imports) (ast.Expr, bool, error) {
	expr := ast.Unparen(typ)

	var (
		base ast.Expr
		args []ast.Expr
	)
	switch expr := expr.(type) {
	case *ast.IndexExpr:
		base, args = expr.X, []ast.Expr{expr.Index}
	case *ast.IndexListExpr:
		base, args = expr.X, expr.Indices
	default:
		base = expr
	}

	if !isOption(ast.Unparen(base), imps) {
		return nil, false, nil
	}

	if len(args) != 1 {
		return nil, false, codefmt.Errorf(p, typ, "record %s: field %s: Option takes exactly one type argument, got %d in %c", rec.Name, name.Name, len(args), typ)
	}

	arg := args[0]
	if !p.isType(arg) {
		return nil, false, codefmt.Errorf(p, arg, "record %s: field %s: %c is not a type in %c", rec.Name, name.Name, arg, typ)
	}
	return arg, true, nil
}

// isOption reports whether expr refers to sectiongen.Option.
func isOption(expr ast.Expr, imps Imports) bool {
	switch expr := expr.(type) {
	case *ast.SelectorExpr:
		x, ok := expr.X.(*ast.Ident)
		if !ok || expr.Sel.Name != "Option" {
			return false
		}
		path, ok := imps.Resolve(x.Name)
		return ok && IsSectiongenImport(path)
	case *ast.Ident:
		return imps.Dot && expr.Name == "Option"
	}
	return false
}

// isType reports whether expr can be a type. Without type information, the
// decision relies on the syntax only, so an identifier of a constant passes.
func (p *Parser) isType(expr ast.Expr) bool {
	if info := p.pkg.TypesInfo; info != nil {
		if tv, ok := info.Types[expr]; ok {
			return tv.IsType()
		}
	}
	return isTypeSyntax(expr)
}

func isTypeSyntax(expr ast.Expr) bool {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		switch expr.Name {
		case "nil", "true", "false", "iota", "_":
			return false
		}
		return true
	case *ast.SelectorExpr:
		_, ok := expr.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeSyntax(expr.X)
	case *ast.IndexExpr:
		return isTypeSyntax(expr.X) && isTypeSyntax(expr.Index)
	case *ast.IndexListExpr:
		if !isTypeSyntax(expr.X) {
			return false
		}
		for _, index := range expr.Indices {
			if !isTypeSyntax(index) {
				return false
			}
		}
		return true
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	}
	return false
}
