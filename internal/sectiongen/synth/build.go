// Package synth builds the accessors of sectiongen records and writes their
// code.
package synth

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
	"github.com/sublee/sectiongen/internal/sectiongen/schema"
	"github.com/sublee/sectiongen/internal/words"
)

// EnsureEmptyName is the name of the method which checks that every field of a
// record has been consumed.
const EnsureEmptyName = "EnsureEmpty"

// Names of the error constructors that the record author declares.
const (
	MissingFieldError    = "missingFieldError"
	DuplicateFieldError  = "duplicateFieldError"
	UnexpectedFieldError = "unexpectedFieldError"
)

// Accessors is the set of methods generated for a record.
type Accessors struct {
	Record *schema.Record
	Fields []Accessor

	pkg *packages.Package
}

// Accessor is the getter and setter pair of a field.
type Accessor struct {
	Field  schema.Field
	Getter string
	Setter string
}

// Pkg implements [codefmt.Pkger].
func (as *Accessors) Pkg() *packages.Package { return as.pkg }

// Pos returns the position of the record.
func (as *Accessors) Pos() token.Pos { return as.Record.Pos() }

// GetterName returns the name of the getter for a field. Each word of the
// field name is title-cased, and underscores are dropped:
//
//	GetterName("a")           // "A"
//	GetterName("sectionName") // "SectionName"
//	GetterName("http_port")   // "HttpPort"
func GetterName(field string) string {
	return words.Exported(field)
}

// SetterName returns the name of the setter for a field.
//
//	SetterName("sectionName") // "SetSectionName"
func SetterName(field string) string {
	return "Set" + GetterName(field)
}

// Build resolves the accessor names of a record. Names which cannot be used
// or which conflict with each other, with a field, or with a method of the
// record are reported. It collects all errors instead of stopping at the
// first error.
func Build(pkg *packages.Package, rec *schema.Record) (*Accessors, error) {
	as := &Accessors{Record: rec, pkg: pkg}

	// key: generated name, value: ast.Node which claimed the name
	claimed := linkedhashmap.New()

	var errs error
	claim := func(name string, owner ast.Node, ownerDesc string) bool {
		if prev, ok := claimed.Get(name); ok {
			prev := prev.(claimant)
			err := codefmt.Errorf(as, owner, "record %s: %s generates %s which is already generated for %s at %b",
				rec.Name, ownerDesc, name, prev.desc, prev.node)
			errs = errors.Join(errs, err)
			return false
		}
		if pos, ok := rec.FieldNames[name]; ok {
			err := codefmt.Errorf(as, owner, "record %s: %s generates %s which conflicts with field %s at %b",
				rec.Name, ownerDesc, name, name, pos)
			errs = errors.Join(errs, err)
			return false
		}
		if pos, ok := rec.Methods[name]; ok {
			err := codefmt.Errorf(as, owner, "record %s: %s generates %s which conflicts with method %s at %b",
				rec.Name, ownerDesc, name, name, pos)
			errs = errors.Join(errs, err)
			return false
		}
		claimed.Put(name, claimant{owner, ownerDesc})
		return true
	}

	claim(EnsureEmptyName, rec.Spec.Name, "record "+rec.Name)

	for _, f := range rec.Fields {
		desc := "field " + f.Name

		getter := GetterName(f.Name)
		if !token.IsIdentifier(getter) || !token.IsExported(getter) {
			err := codefmt.Errorf(as, f.Ident, "record %s: cannot derive an exported accessor name from %s", rec.Name, desc)
			errs = errors.Join(errs, err)
			continue
		}
		setter := SetterName(f.Name)

		ok := claim(getter, f.Ident, desc)
		ok = claim(setter, f.Ident, desc) && ok
		if !ok {
			continue
		}

		as.Fields = append(as.Fields, Accessor{
			Field:  f,
			Getter: getter,
			Setter: setter,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return as, nil
}

// claimant is a record or one of its fields which claimed a generated name.
type claimant struct {
	node ast.Node
	desc string
}
