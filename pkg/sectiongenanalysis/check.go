package sectiongenanalysis

import (
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/sublee/sectiongen/internal/sectiongen/synth"
	"github.com/sublee/sectiongen/internal/typeinfo"
)

type constructor struct {
	name string
	sig  *types.Signature
}

// constructors returns the error constructors which a record with the given
// error carrier must declare.
func constructors(pkg *types.Package, errType typeinfo.Type) []constructor {
	field := typeinfo.Param{Name: "field", Type: typeinfo.String()}
	return []constructor{
		{synth.MissingFieldError, typeinfo.NewSignature(pkg, []typeinfo.Param{
			field,
		}, errType)},
		{synth.DuplicateFieldError, typeinfo.NewSignature(pkg, []typeinfo.Param{
			field,
			{Name: "prior", Type: typeinfo.Any()},
		}, errType)},
		{synth.UnexpectedFieldError, typeinfo.NewSignature(pkg, []typeinfo.Param{
			field,
			{Name: "leftover", Type: typeinfo.Any()},
		}, errType)},
	}
}

// checkConstructors reports what a record lacks for its generated accessors
// to compile: the error carrier type and the error constructors.
func checkConstructors(pass *analysis.Pass, l *typeinfo.Lookup, as *synth.Accessors) {
	rec := as.Record
	if len(as.Fields) == 0 {
		// EnsureEmpty of an empty record constructs no error.
		return
	}

	recType, ok := typeinfo.Declared(pass.Pkg, rec.Name)
	if !ok {
		return
	}

	errType, ok := typeinfo.Declared(pass.Pkg, rec.ErrorName())
	if !ok {
		pass.Reportf(rec.Pos(), "record %s: %s is not declared", rec.Name, rec.ErrorName())
		return
	}
	if !errType.ImplementsError() {
		pass.Reportf(rec.Pos(), "record %s: %s does not implement error", rec.Name, rec.ErrorName())
	}

	qf := types.RelativeTo(pass.Pkg)
	for _, c := range constructors(pass.Pkg, errType) {
		fn, ok := l.Method(recType, c.name)
		if !ok {
			sig := strings.TrimPrefix(types.TypeString(c.sig, qf), "func")
			pass.Reportf(rec.Pos(), "record %s: missing method %s%s", rec.Name, c.name, sig)
			continue
		}
		if err := fn.Match(c.sig, qf); err != nil {
			pass.Reportf(fn.Pos(), "record %s: method %s", rec.Name, err)
		}
	}
}
