// Package schema extracts sectiongen records from the syntax of a package.
//
// It works on syntax trees only. Type information is used when available but
// never required, so a package which calls accessors that are not generated
// yet can still be parsed.
package schema

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
)

// ImportPath is the import path of the package declaring [sectiongen.Option].
const ImportPath = "github.com/sublee/sectiongen"

// GeneratedHeader starts the first line of every file written by sectiongen.
const GeneratedHeader = "// Code generated by " + ImportPath

// IsSectiongenImport reports whether path imports the sectiongen package,
// possibly vendored.
func IsSectiongenImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses an AST of the underlying package to collect sectiongen
// records.
type Parser struct {
	pkg     *packages.Package
	outFile string
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. Files named outFile or carrying the sectiongen
// header are treated as generated and skipped. outFile may be empty.
func New(pkg *packages.Package, outFile string) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	return &Parser{pkg: pkg, outFile: outFile}, nil
}

// SourceFiles returns the files of the package which are not generated by
// sectiongen.
func (p *Parser) SourceFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if !p.isGenerated(file) {
			files = append(files, file)
		}
	}
	return files
}

func (p *Parser) isGenerated(file *ast.File) bool {
	if p.outFile != "" {
		name := p.pkg.Fset.Position(file.Package).Filename
		if name != "" && filepath.Base(name) == p.outFile {
			return true
		}
	}
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, GeneratedHeader) {
				return true
			}
		}
	}
	return false
}

// Imports maps the local names of the imports in a file to their paths.
type Imports struct {
	names map[string]string

	// Dot is true if the file dot-imports sectiongen.
	Dot bool
}

// Resolve returns the import path for a package qualifier.
func (imps Imports) Resolve(name string) (string, bool) {
	path, ok := imps.names[name]
	return path, ok
}

// parseImports collects the imports of a file. Dot imports other than
// sectiongen are reported because generated code cannot refer to their
// identifiers.
func (p *Parser) parseImports(file *ast.File) (Imports, error) {
	imps := Imports{names: make(map[string]string)}
	var dotErr error
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue // rejected by the Go parser already
		}

		var name string
		if spec.Name != nil {
			name = spec.Name.Name
		} else {
			name = codefmt.PackageName(p.pkg, path)
		}

		switch name {
		case "_":
			continue
		case ".":
			if IsSectiongenImport(path) {
				imps.Dot = true
			} else if dotErr == nil {
				dotErr = codefmt.Errorf(p, spec, "cannot dot-import %q in a file declaring sectiongen records", path)
			}
			continue
		}
		imps.names[name] = path
	}
	return imps, dotErr
}

// tailIdent extracts the rightmost [ast.Ident] from a type expression.
//
//	Foo
//	^^^
//	*pkg.Foo
//	     ^^^
//	pkg.Foo[int]
//	    ^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return tailIdent(expr.Sel)
	case *ast.StarExpr:
		return tailIdent(expr.X)
	case *ast.IndexExpr:
		return tailIdent(expr.X)
	case *ast.IndexListExpr:
		return tailIdent(expr.X)
	}
	return nil, false
}

// PackageNames returns the names declared at the package level in the source
// files. Generated code must not shadow them.
func (p *Parser) PackageNames() []string {
	var names []string
	for _, file := range p.SourceFiles() {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if decl.Recv == nil {
					names = append(names, decl.Name.Name)
				}
			case *ast.GenDecl:
				for _, spec := range decl.Specs {
					switch spec := spec.(type) {
					case *ast.TypeSpec:
						names = append(names, spec.Name.Name)
					case *ast.ValueSpec:
						for _, id := range spec.Names {
							names = append(names, id.Name)
						}
					}
				}
			}
		}
	}
	return names
}
