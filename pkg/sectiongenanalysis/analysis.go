// Package sectiongenanalysis provides an analyzer which reports malformed
// sectiongen records without generating code.
package sectiongenanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
	"github.com/sublee/sectiongen/internal/sectiongen/schema"
	"github.com/sublee/sectiongen/internal/sectiongen/synth"
	"github.com/sublee/sectiongen/internal/typeinfo"
)

// Analyzer validates the sectiongen records in the package.
var Analyzer = &analysis.Analyzer{
	Name:             "sectiongen",
	Doc:              "linter for sectiongen records",
	Run:              run,
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	p, err := schema.New(pkg, "")
	if err != nil {
		return nil, err
	}

	recs, errs := p.ParseRecords()

	var accs []*synth.Accessors
	for _, rec := range recs {
		as, err := synth.Build(pkg, rec)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		accs = append(accs, as)
	}
	report(pass, errs)

	// Method sets are meaningless on ill-typed packages.
	if len(pass.TypeErrors) != 0 {
		return nil, nil
	}
	l := typeinfo.NewLookup()
	for _, as := range accs {
		checkConstructors(pass, l, as)
	}
	return nil, nil
}

// report unrolls all errors and reports those with a position.
func report(pass *analysis.Pass, err error) {
	if err == nil {
		return
	}

	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
		}
	}
}
