package sectiongeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/sectiongen/internal/codefmt"
	"github.com/sublee/sectiongen/internal/sectiongen/schema"
	"github.com/sublee/sectiongen/internal/sectiongen/synth"
)

// Sectiongen generates accessor code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Sectiongen struct {
	p  *schema.Parser
	ns codefmt.NS

	accs []*synth.Accessors
}

// New creates a new [Sectiongen] for the given package. The package must have
// its Syntax. Files named outFile are regarded as generated by a previous run.
func New(pkg *packages.Package, outFile string) (*Sectiongen, error) {
	parser, err := schema.New(pkg, outFile)
	if err != nil {
		return nil, err
	}

	return &Sectiongen{
		p:  parser,
		ns: codefmt.NewNS(parser.PackageNames()...),
	}, nil
}

// Build prepares code generation by parsing records and resolving their
// accessors. All potential errors are returned by this method. It must be
// called before [Generate].
func (sg *Sectiongen) Build() error {
	recs, errs := sg.p.ParseRecords()

	for _, rec := range recs {
		zap.L().Named("sectiongen").Debug("found record",
			zap.String("pkg", sg.p.Pkg().PkgPath),
			zap.String("record", rec.Name),
			zap.Int("fields", len(rec.Fields)),
		)

		accs, err := synth.Build(sg.p.Pkg(), rec)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		sg.accs = append(sg.accs, accs)
	}

	return errs
}

// NumRecords returns the number of records to generate accessors for.
func (sg *Sectiongen) NumRecords() int {
	return len(sg.accs)
}

// Generate generates accessor code for the records declared in non-test
// files. It must be called after [Build] succeeds. It returns nil if there are
// no such records.
func (sg *Sectiongen) Generate() []byte {
	return sg.generate(false)
}

// GenerateTest generates accessor code for the records declared in _test.go
// files. The result belongs in a _test.go file of the same package. It
// returns nil if there are no such records.
func (sg *Sectiongen) GenerateTest() []byte {
	return sg.generate(true)
}

func (sg *Sectiongen) generate(test bool) []byte {
	var accs []*synth.Accessors
	for _, a := range sg.accs {
		if sg.inTestFile(a.Record) == test {
			accs = append(accs, a)
		}
	}
	if len(accs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, sg.p.Pkg(), sg.ns)
	for _, a := range accs {
		a.WriteDefineCode(w, sg.ns)
	}
	return sg.frameCode(w, &buf)
}

func (sg *Sectiongen) inTestFile(rec *schema.Record) bool {
	name := sg.p.Pkg().Fset.Position(rec.File.Package).Filename
	return strings.HasSuffix(name, "_test.go")
}

func (sg *Sectiongen) frameCode(w *codefmt.Writer, body io.Reader) []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s. DO NOT EDIT.\n\n", schema.GeneratedHeader, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", sg.p.Pkg().Name)

	if imps := w.Imports(); len(imps) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imps {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, body)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
