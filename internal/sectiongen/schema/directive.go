package schema

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/sectiongen/internal/codefmt"
)

// Directive marks a struct type as a sectiongen record:
//
//	//sectiongen:parser
//	type Server struct { ... }
const Directive = "//sectiongen:parser"

const directivePrefix = "//sectiongen:"

// annotatedSpec is a type spec carrying the [Directive].
type annotatedSpec struct {
	spec *ast.TypeSpec
	file *ast.File
}

// findDirectives returns the type specs annotated with [Directive] in a file.
// It also reports directives which are unknown or which do not annotate a
// type declaration.
func (p *Parser) findDirectives(file *ast.File) ([]annotatedSpec, error) {
	var specs []annotatedSpec
	attached := make(map[token.Pos]bool)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		// The doc comment of "type T struct{}" belongs to the declaration,
		// and that of a grouped spec belongs to the spec.
		if c := findDirective(gen.Doc); c != nil && len(gen.Specs) == 1 && !gen.Lparen.IsValid() {
			attached[c.Pos()] = true
			specs = append(specs, annotatedSpec{gen.Specs[0].(*ast.TypeSpec), file})
			continue
		}
		for _, spec := range gen.Specs {
			spec := spec.(*ast.TypeSpec)
			if c := findDirective(spec.Doc); c != nil {
				attached[c.Pos()] = true
				specs = append(specs, annotatedSpec{spec, file})
			}
		}
	}

	var errs error
	for _, group := range file.Comments {
		for _, c := range group.List {
			name := directiveName(c)
			if !strings.HasPrefix(name, directivePrefix) {
				continue
			}
			switch {
			case name != Directive:
				errs = errors.Join(errs, codefmt.Errorf(p, c, "unknown directive %q", name))
			case !attached[c.Pos()]:
				errs = errors.Join(errs, codefmt.Errorf(p, c, "%s must annotate a type declaration", Directive))
			}
		}
	}
	return specs, errs
}

// findDirective returns the [Directive] comment in a doc comment group.
func findDirective(doc *ast.CommentGroup) *ast.Comment {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		if directiveName(c) == Directive {
			return c
		}
	}
	return nil
}

// directiveName returns the first word of a line comment. A directive may be
// followed by a note:
//
//	//sectiongen:parser // server section
func directiveName(c *ast.Comment) string {
	name, _, _ := strings.Cut(c.Text, " ")
	name, _, _ = strings.Cut(name, "\t")
	return name
}
