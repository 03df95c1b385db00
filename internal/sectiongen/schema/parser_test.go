package schema_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
	"github.com/sublee/sectiongen/internal/sectiongen/schema"
)

// parsePkg builds a syntax-only package from the given files.
func parsePkg(t *testing.T, files map[string]string) *packages.Package {
	t.Helper()

	pkg := &packages.Package{
		Name:    "p",
		PkgPath: "example.com/p",
		Fset:    token.NewFileSet(),
	}
	for name, src := range files {
		file, err := parser.ParseFile(pkg.Fset, name, src, parser.ParseComments|parser.SkipObjectResolution)
		require.NoError(t, err)
		pkg.Syntax = append(pkg.Syntax, file)
	}
	return pkg
}

func parseRecords(t *testing.T, src string) ([]*schema.Record, error) {
	t.Helper()

	p, err := schema.New(parsePkg(t, map[string]string{"p.go": src}), "sectiongen_gen.go")
	require.NoError(t, err)
	return p.ParseRecords()
}

// fieldSummary is a comparable form of [schema.Field].
type fieldSummary struct {
	Name string
	Type string
}

func summarize(fields []schema.Field) []fieldSummary {
	var out []fieldSummary
	for _, f := range fields {
		out = append(out, fieldSummary{f.Name, codefmt.FormatExpr(nil, f.Type)})
	}
	return out
}

func TestNewRequiresSyntax(t *testing.T) {
	_, err := schema.New(&packages.Package{Name: "p", PkgPath: "example.com/p", Fset: token.NewFileSet()}, "")
	assert.ErrorContains(t, err, "need pkg syntax")

	_, err = schema.New(&packages.Package{PkgPath: "example.com/p"}, "")
	assert.ErrorContains(t, err, "need pkg name")
}

func TestIsSectiongenImport(t *testing.T) {
	assert.True(t, schema.IsSectiongenImport("github.com/sublee/sectiongen"))
	assert.True(t, schema.IsSectiongenImport("example.com/app/vendor/github.com/sublee/sectiongen"))
	assert.False(t, schema.IsSectiongenImport("github.com/sublee/sectiongen/pkg/sectiongenerrors"))
	assert.False(t, schema.IsSectiongenImport("example.com/myvendor/github.com/sublee/sectiongen"))
}

func TestParseRecordsClassify(t *testing.T) {
	recs, err := parseRecords(t, `package p

import (
	"time"

	"github.com/sublee/sectiongen"
)

//sectiongen:parser
type Section struct {
	name    sectiongen.Option[string]
	timeout sectiongen.Option[time.Duration]
	label   string
	ptr     *sectiongen.Option[int]
	list    []sectiongen.Option[int]
	x, y    sectiongen.Option[map[string][]byte]
	paren   (sectiongen.Option[Pair[string, uint]])
	time.Location
}

type Pair[A, B any] struct{}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "Section", rec.Name)
	assert.Equal(t, "SectionError", rec.ErrorName())

	want := []fieldSummary{
		{"name", "string"},
		{"timeout", "time.Duration"},
		{"x", "map[string][]byte"},
		{"y", "map[string][]byte"},
		{"paren", "Pair[string, uint]"},
	}
	if diff := cmp.Diff(want, summarize(rec.Fields)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"name", "timeout", "label", "ptr", "list", "x", "y", "paren", "Location"} {
		assert.Contains(t, rec.FieldNames, name)
	}
	assert.Len(t, rec.FieldNames, 9)
}

func TestParseRecordsImportAlias(t *testing.T) {
	recs, err := parseRecords(t, `package p

import (
	sg "github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//sectiongen:parser
type Section struct {
	a sg.Option[*sectiongenerrors.FieldError]
	b sectiongen.Option[int] // not imported as sectiongen
}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []fieldSummary{{"a", "*sectiongenerrors.FieldError"}}, summarize(recs[0].Fields))

	path, ok := recs[0].Imports.Resolve("sectiongenerrors")
	assert.True(t, ok)
	assert.Equal(t, "github.com/sublee/sectiongen/pkg/sectiongenerrors", path)

	_, ok = recs[0].Imports.Resolve("sectiongen")
	assert.False(t, ok)
}

func TestParseRecordsDotImport(t *testing.T) {
	recs, err := parseRecords(t, `package p

import . "github.com/sublee/sectiongen"

//sectiongen:parser
type Section struct {
	a Option[int]
}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Imports.Dot)
	assert.Equal(t, []fieldSummary{{"a", "int"}}, summarize(recs[0].Fields))
}

func TestParseRecordsLocalOption(t *testing.T) {
	recs, err := parseRecords(t, `package p

type Option[T any] struct{}

//sectiongen:parser
type Section struct {
	a Option[int]
}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Fields, "a local Option type is not the marker")
}

func TestParseRecordsEmptyStruct(t *testing.T) {
	recs, err := parseRecords(t, `package p

//sectiongen:parser
type Empty struct{}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Fields)
}

func TestParseRecordsGroupedDecl(t *testing.T) {
	recs, err := parseRecords(t, `package p

import "github.com/sublee/sectiongen"

type (
	//sectiongen:parser
	B struct{ x sectiongen.Option[int] }

	NotRecord struct{ y sectiongen.Option[int] }

	//sectiongen:parser
	A struct{ z sectiongen.Option[int] }
)
`)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "B", recs[0].Name, "records are sorted by position")
	assert.Equal(t, "A", recs[1].Name)
}

func TestParseRecordsMethods(t *testing.T) {
	pkg := parsePkg(t, map[string]string{
		"p.go": `package p

import "github.com/sublee/sectiongen"

//sectiongen:parser
type Section struct{ a sectiongen.Option[int] }

func (s *Section) missingFieldError(field string) error { return nil }
func (Section) Close() {}
func helper() {}
`,
		"sectiongen_gen.go": `// Code generated by github.com/sublee/sectiongen. DO NOT EDIT.

package p

func (s *Section) A() (int, error) { return 0, nil }
`,
	})

	p, err := schema.New(pkg, "sectiongen_gen.go")
	require.NoError(t, err)
	assert.Len(t, p.SourceFiles(), 1)

	recs, err := p.ParseRecords()
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Contains(t, recs[0].Methods, "missingFieldError")
	assert.Contains(t, recs[0].Methods, "Close")
	assert.NotContains(t, recs[0].Methods, "A", "methods in generated files do not count")
	assert.NotContains(t, recs[0].Methods, "helper")
}

func TestParseRecordsSkipsGeneratedByHeader(t *testing.T) {
	pkg := parsePkg(t, map[string]string{
		"other_name.go": `// Code generated by github.com/sublee/sectiongen@v1.0.0. DO NOT EDIT.

package p

import "github.com/sublee/sectiongen"

//sectiongen:parser
type Stale struct{ a sectiongen.Option[int] }
`,
	})

	p, err := schema.New(pkg, "sectiongen_gen.go")
	require.NoError(t, err)

	recs, err := p.ParseRecords()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestParseRecordsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Generic",
			src: `package p
import "github.com/sublee/sectiongen"
//sectiongen:parser
type R[T any] struct{ a sectiongen.Option[T] }
`,
			want: "p.go:4:7: record R: generic types are not supported",
		},
		{
			name: "NonStruct",
			src: `package p
//sectiongen:parser
type R map[string]int
`,
			want: "p.go:3:8: record R: requires a struct type, got map[string]int",
		},
		{
			name: "Alias",
			src: `package p
type S struct{}
//sectiongen:parser
type R = S
`,
			want: "p.go:4:6: record R: requires a struct type, not an alias",
		},
		{
			name: "NoTypeArgument",
			src: `package p
import "github.com/sublee/sectiongen"
//sectiongen:parser
type R struct {
	a sectiongen.Option
}
`,
			want: "p.go:5:4: record R: field a: Option takes exactly one type argument, got 0 in sectiongen.Option",
		},
		{
			name: "TwoTypeArguments",
			src: `package p
import "github.com/sublee/sectiongen"
//sectiongen:parser
type R struct {
	a sectiongen.Option[int, string]
}
`,
			want: "p.go:5:4: record R: field a: Option takes exactly one type argument, got 2 in sectiongen.Option[int, string]",
		},
		{
			name: "NotAType",
			src: `package p
import "github.com/sublee/sectiongen"
//sectiongen:parser
type R struct {
	a sectiongen.Option[nil]
}
`,
			want: "p.go:5:22: record R: field a: nil is not a type in sectiongen.Option[nil]",
		},
		{
			name: "BlankField",
			src: `package p
import "github.com/sublee/sectiongen"
//sectiongen:parser
type R struct {
	_ sectiongen.Option[int]
}
`,
			want: "p.go:5:2: record R: blank field cannot be sectiongen.Option[int]",
		},
		{
			name: "DotImport",
			src: `package p
import . "time"
//sectiongen:parser
type R struct{}
var _ Duration
`,
			want: `p.go:2:8: cannot dot-import "time" in a file declaring sectiongen records`,
		},
		{
			name: "UnknownDirective",
			src: `package p
//sectiongen:parse
type R struct{}
`,
			want: `p.go:2:1: unknown directive "//sectiongen:parse"`,
		},
		{
			name: "MisplacedDirective",
			src: `package p
//sectiongen:parser
func f() {}
`,
			want: "p.go:2:1: //sectiongen:parser must annotate a type declaration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseRecords(t, tt.src)
			assert.Empty(t, recs)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestParseRecordsCollectsAllErrors(t *testing.T) {
	_, err := parseRecords(t, `package p

import "github.com/sublee/sectiongen"

//sectiongen:parser
type R struct {
	a sectiongen.Option
	b sectiongen.Option[int, int]
	c sectiongen.Option[int]
}

//sectiongen:parser
type S int
`)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)

	var n int
	var walk func(errs []error)
	walk = func(errs []error) {
		for _, err := range errs {
			if u, ok := err.(interface{ Unwrap() []error }); ok {
				walk(u.Unwrap())
				continue
			}
			n++
		}
	}
	walk(joined.Unwrap())
	assert.Equal(t, 3, n)
}

func TestFieldPos(t *testing.T) {
	recs, err := parseRecords(t, `package p

import "github.com/sublee/sectiongen"

//sectiongen:parser
type R struct {
	abc sectiongen.Option[int]
}
`)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	f := recs[0].Fields[0]
	assert.Equal(t, f.Ident.Pos(), f.Pos())
	assert.IsType(t, (*ast.IndexExpr)(nil), f.Outer)
}
