package schema

import (
	"cmp"
	"errors"
	"go/ast"
	"go/token"
	"slices"

	"github.com/sublee/sectiongen/internal/codefmt"
)

// Record is a struct type annotated with [Directive].
type Record struct {
	Name    string
	Spec    *ast.TypeSpec
	File    *ast.File
	Imports Imports

	// Fields are the eligible fields in declaration order.
	Fields []Field

	// FieldNames holds every field name at depth 0 including ignored and
	// embedded fields.
	FieldNames map[string]token.Pos

	// Methods holds the methods declared on the record outside generated
	// files.
	Methods map[string]token.Pos
}

// Pos returns the position of the record name.
func (r *Record) Pos() token.Pos { return r.Spec.Name.Pos() }

// ErrorName is the name of the error carrier type returned by the error
// constructors of the record.
func (r *Record) ErrorName() string { return r.Name + "Error" }

// Field is a field of [sectiongen.Option] type.
type Field struct {
	Name  string
	Ident *ast.Ident

	// Type is the inner type expression T of Option[T].
	Type ast.Expr

	// Outer is the whole Option[T] expression.
	Outer ast.Expr
}

// Pos returns the position of the field name.
func (f Field) Pos() token.Pos { return f.Ident.Pos() }

// ParseRecords collects the records of the package sorted by position. It
// collects all errors instead of stopping at the first error. Records with
// errors are left out.
func (p *Parser) ParseRecords() ([]*Record, error) {
	files := p.SourceFiles()

	var (
		recs []*Record
		errs error
	)
	for _, file := range files {
		specs, err := p.findDirectives(file)
		errs = errors.Join(errs, err)
		if len(specs) == 0 {
			continue
		}

		imps, err := p.parseImports(file)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, s := range specs {
			rec, err := p.parseRecord(s.spec, s.file, imps)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			recs = append(recs, rec)
		}
	}

	for _, rec := range recs {
		rec.Methods = p.collectMethods(files, rec.Name)
	}

	slices.SortFunc(recs, func(a, b *Record) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return recs, errs
}

// parseRecord validates a record declaration and classifies its fields.
func (p *Parser) parseRecord(spec *ast.TypeSpec, file *ast.File, imps Imports) (*Record, error) {
	name := spec.Name.Name

	if spec.TypeParams != nil && spec.TypeParams.NumFields() != 0 {
		return nil, codefmt.Errorf(p, spec.TypeParams, "record %s: generic types are not supported", name)
	}
	if spec.Assign.IsValid() {
		return nil, codefmt.Errorf(p, spec.Name, "record %s: requires a struct type, not an alias", name)
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, codefmt.Errorf(p, spec.Type, "record %s: requires a struct type, got %c", name, spec.Type)
	}

	rec := &Record{
		Name:       name,
		Spec:       spec,
		File:       file,
		Imports:    imps,
		FieldNames: make(map[string]token.Pos),
	}

	var errs error
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			// Embedded fields are named after their types and never eligible.
			if id, ok := tailIdent(field.Type); ok {
				rec.FieldNames[id.Name] = id.Pos()
			}
			continue
		}

		for _, id := range field.Names {
			if id.Name != "_" {
				rec.FieldNames[id.Name] = id.Pos()
			}
		}

		inner, ok, err := p.classify(rec, field.Names[0], field.Type, imps)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if !ok {
			continue
		}

		for _, id := range field.Names {
			if id.Name == "_" {
				errs = errors.Join(errs, codefmt.Errorf(p, id, "record %s: blank field cannot be %c", name, field.Type))
				continue
			}
			rec.Fields = append(rec.Fields, Field{
				Name:  id.Name,
				Ident: id,
				Type:  inner,
				Outer: field.Type,
			})
		}
	}
	if errs != nil {
		return nil, errs
	}
	return rec, nil
}

// collectMethods finds the methods declared on the named type.
func (p *Parser) collectMethods(files []*ast.File, typeName string) map[string]token.Pos {
	methods := make(map[string]token.Pos)
	for _, file := range files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}
			id, ok := tailIdent(fn.Recv.List[0].Type)
			if ok && id.Name == typeName {
				methods[fn.Name.Name] = fn.Name.Pos()
			}
		}
	}
	return methods
}
