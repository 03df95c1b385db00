package synth

import (
	"go/ast"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/sectiongen/internal/codefmt"
	"github.com/sublee/sectiongen/internal/sectiongen/schema"
)

// WriteDefineCode writes the accessor methods of the record. The namespace of
// w holds the package-level names, and each method allocates its local names
// from a copy of it.
//
//	var _ interface {
//		missingFieldError(field string) RError
//		...
//	} = (*R)(nil)
//
//	func (r *R) F() (T, error)
//	func (r *R) SetF(f T) error
//	func (r *R) EnsureEmpty() error
func (as *Accessors) WriteDefineCode(w *codefmt.Writer, ns codefmt.NS) {
	rec := as.Record
	if ns == nil {
		ns = codefmt.NewNS()
	}

	w.Printf("// sectiongen: %s\n\n", rec.Name)

	if len(as.Fields) != 0 {
		as.writeAssertCode(w)
	}

	types := make([]string, len(as.Fields))
	for i, a := range as.Fields {
		types[i] = as.typeCode(w, a.Field)
	}

	for i, a := range as.Fields {
		as.writeGetterCode(w.WithNS(maps.Clone(ns)), a, types[i])
		as.writeSetterCode(w.WithNS(maps.Clone(ns)), a, types[i])
	}
	as.writeEnsureEmptyCode(w.WithNS(maps.Clone(ns)))
}

// writeAssertCode writes an assertion that the record declares the error
// constructors with the expected signatures.
func (as *Accessors) writeAssertCode(w *codefmt.Writer) {
	rec := as.Record
	w.Printf("var _ interface {\n")
	w.Printf("%s(field string) %s\n", MissingFieldError, rec.ErrorName())
	w.Printf("%s(field string, prior any) %s\n", DuplicateFieldError, rec.ErrorName())
	w.Printf("%s(field string, leftover any) %s\n", UnexpectedFieldError, rec.ErrorName())
	w.Printf("} = (*%s)(nil)\n\n", rec.Name)
}

// writeGetterCode writes a getter which takes the value out of the field.
func (as *Accessors) writeGetterCode(w *codefmt.Writer, a Accessor, typ string) {
	rec, f := as.Record, a.Field
	w.Reserve("nil")
	recv := w.Name(receiverName(rec.Name))
	v := w.Name("v")
	ok := w.Name("ok")

	w.Printf("// %s takes the value of %s out of the %s. It fails if %s is unset.\n", a.Getter, f.Name, rec.Name, f.Name)
	w.Printf("func (%s *%s) %s() (%s, error) {\n", recv, rec.Name, a.Getter, typ)
	w.Printf("%s, %s := %s.%s.Take()\n", v, ok, recv, f.Name)
	w.Printf("if !%s {\n", ok)
	w.Printf("return %s, %s.%s(%q)\n", v, recv, MissingFieldError, f.Name)
	w.Printf("}\n")
	w.Printf("return %s, nil\n", v)
	w.Printf("}\n\n")
}

// writeSetterCode writes a setter which stores a value in the field at most
// once. On a duplicate, the prior value is taken out and reported, and the
// new value is dropped.
func (as *Accessors) writeSetterCode(w *codefmt.Writer, a Accessor, typ string) {
	rec, f := as.Record, a.Field
	w.Reserve("nil")
	recv := w.Name(receiverName(rec.Name))
	param := w.Name(f.Name)
	prior := w.Name("prior")
	ok := w.Name("ok")

	w.Printf("// %s stores %s in the %s. It fails if %s is already set, leaving it unset.\n", a.Setter, param, rec.Name, f.Name)
	w.Printf("func (%s *%s) %s(%s %s) error {\n", recv, rec.Name, a.Setter, param, typ)
	w.Printf("if %s, %s := %s.%s.Take(); %s {\n", prior, ok, recv, f.Name, ok)
	w.Printf("return %s.%s(%q, %s)\n", recv, DuplicateFieldError, f.Name, prior)
	w.Printf("}\n")
	w.Printf("%s.%s.Set(%s)\n", recv, f.Name, param)
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}

// writeEnsureEmptyCode writes a method which drains every field in
// declaration order and fails at the first field still set.
func (as *Accessors) writeEnsureEmptyCode(w *codefmt.Writer) {
	rec := as.Record
	w.Reserve("nil")
	recv := w.Name(receiverName(rec.Name))
	v := w.Name("v")
	ok := w.Name("ok")

	w.Printf("// %s fails if any field of the %s is still set. The %s must not be used\n", EnsureEmptyName, rec.Name, rec.Name)
	w.Printf("// afterward.\n")
	if len(as.Fields) == 0 {
		w.Printf("func (*%s) %s() error {\n", rec.Name, EnsureEmptyName)
	} else {
		w.Printf("func (%s *%s) %s() error {\n", recv, rec.Name, EnsureEmptyName)
	}
	for _, a := range as.Fields {
		f := a.Field
		w.Printf("if %s, %s := %s.%s.Take(); %s {\n", v, ok, recv, f.Name, ok)
		w.Printf("return %s.%s(%q, %s)\n", recv, UnexpectedFieldError, f.Name, v)
		w.Printf("}\n")
	}
	w.Printf("return nil\n")
	w.Printf("}\n\n")
}

// typeCode returns the code of the inner type of a field as written in the
// generated file. Qualifiers are imported by w, and Option under a dot import
// is qualified.
func (as *Accessors) typeCode(w *codefmt.Writer, f schema.Field) string {
	imps := as.Record.Imports
	typ := codefmt.RewriteImports(w, f.Type, imps.Resolve)
	if imps.Dot {
		typ = qualifyOption(w, typ)
	}
	return codefmt.FormatExpr(nil, typ)
}

// qualifyOption replaces bare Option identifiers in a type expression with
// sectiongen.Option. The expression is modified in place.
func qualifyOption(w *codefmt.Writer, expr ast.Expr) ast.Expr {
	return astutil.Apply(expr, func(c *astutil.Cursor) bool {
		if _, ok := c.Node().(*ast.SelectorExpr); ok {
			// pkg.Option is not ours.
			return false
		}

		id, ok := c.Node().(*ast.Ident)
		if !ok || id.Name != "Option" || c.Name() == "Names" {
			return true
		}
		c.Replace(&ast.SelectorExpr{
			X:   ast.NewIdent(w.Import(schema.ImportPath, "sectiongen")),
			Sel: ast.NewIdent("Option"),
		})
		return false
	}, nil).(ast.Expr)
}

// receiverName returns a receiver name derived from the type name:
//
//	receiverName("Server") // "s"
//	receiverName("_x")     // "r"
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "r"
	}
	return strings.ToLower(string(r))
}
