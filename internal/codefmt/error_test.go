package codefmt_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("test.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "error")
	assert.Equal(t, "test.go:1:1: error", err.Error())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}

func TestErrorfExpr(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", "package p\n\nvar x map[string][]int\n", 0)
	require.NoError(t, err)

	spec := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ValueSpec)
	pkg := &packages.Package{Fset: fset}

	err = codefmt.Errorf(codefmt.Pkg(pkg), spec.Type, "bad type %c at %b", spec.Type, spec.Names[0])
	assert.Equal(t, "p.go:3:7: bad type map[string][]int at p.go:3:5", err.Error())

	var codeErr *codefmt.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, spec.Type.Pos(), codeErr.Pos())
	assert.Equal(t, spec.Type.End(), codeErr.End())
}
