package codefmt

import (
	"go/ast"
	"go/parser"
	"go/types"
	"io"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code.
type Writer struct {
	w        io.Writer
	pkg      *packages.Package
	fmt      Formatter
	imports  *linkedhashmap.Map // key: name, value: Import
	reserved NS
	ns       NS
}

// NewWriter creates a new [Writer]. Names in reserved are package-level names
// which imports must not shadow. It does not initialize the namespace. To
// specify a namespace, use [Writer.WithNS].
func NewWriter(w io.Writer, pkg *packages.Package, reserved NS) *Writer {
	return &Writer{
		w:        w,
		pkg:      pkg,
		fmt:      New(pkg),
		imports:  linkedhashmap.New(),
		reserved: reserved,
		ns:       nil,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	return &Writer{
		w:        w.w,
		pkg:      w.pkg,
		fmt:      w.fmt,
		imports:  w.imports,
		reserved: w.reserved,
		ns:       ns,
	}
}

// Import is a package imported by generated code.
type Import struct {
	Path string
	Name string

	// HasAlias indicates that the import needs an explicit name because Name
	// differs from the package name.
	HasAlias bool
}

// Imports returns the collected imports in the order they were added.
func (w *Writer) Imports() []Import {
	var imps []Import
	for _, v := range w.imports.Values() {
		imps = append(imps, v.(Import))
	}
	return imps
}

// Import adds an import for the package with the given path and the name the
// source code refers to it by. It returns the name to use in generated code,
// which differs from name if name conflicts with package-level names or
// another import.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
func (w *Writer) Import(importPath, name string) string {
	pkgName := PackageName(w.pkg, importPath)
	if name == "" {
		name = pkgName
	}

	for name := range DisambiguateName(name) {
		prev, ok := w.imports.Get(name)
		if ok && prev.(Import).Path == importPath {
			// Already imported with the same name.
			return name
		}
		if !ok && !w.reserved.Has(name) {
			w.imports.Put(name, Import{Path: importPath, Name: name, HasAlias: name != pkgName})
			return name
		}
	}
	panic("unreachable")
}

// RewriteImports returns a copy of the type expression whose package
// qualifiers are imported by the writer. resolve maps a qualifier in the
// source file to its import path. Qualifiers are renamed when the writer had
// to import their packages under other names.
//
// The given expression is left untouched.
func RewriteImports(w *Writer, expr ast.Expr, resolve func(name string) (string, bool)) ast.Expr {
	clone, err := parser.ParseExpr(w.fmt.Expr(expr))
	if err != nil {
		panic(err) // should never happen because the expression was printed by go/printer
	}

	return astutil.Apply(clone, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		importPath, ok := resolve(pkgIdent.Name)
		if !ok {
			// Not a package qualifier.
			return true
		}

		c.Replace(&ast.SelectorExpr{
			X:   ast.NewIdent(w.Import(importPath, pkgIdent.Name)),
			Sel: ast.NewIdent(sel.Sel.Name),
		})
		return false
	}, nil).(ast.Expr)
}

// PackageName returns the name of the package imported by pkg with the given
// path. If pkg does not know the import, the name is guessed from the path
// like goimports does.
func PackageName(pkg *packages.Package, importPath string) string {
	if pkg != nil {
		if imp, ok := pkg.Imports[importPath]; ok && imp.Name != "" {
			return imp.Name
		}
		if pkg.Types != nil {
			i := slices.IndexFunc(pkg.Types.Imports(), func(imp *types.Package) bool {
				return imp.Path() == importPath
			})
			if i != -1 {
				return pkg.Types.Imports()[i].Name()
			}
		}
	}
	return assumedName(importPath)
}

// assumedName guesses a package name from its import path.
//
//	assumedName("gopkg.in/yaml.v3")             // "yaml"
//	assumedName("github.com/foo/bar/v2")        // "bar"
//	assumedName("github.com/sergi/go-diff")     // "diff"
func assumedName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
	}); i >= 0 {
		base = base[:i]
	}
	return base
}
