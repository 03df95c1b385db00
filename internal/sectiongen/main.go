package sectiongeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

var Version string

// Main is the main entry point for Sectiongen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags
// to use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error
// occurs, it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	log := zap.L().Named("sectiongen")

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded packages", zap.Int("count", len(pkgs)), zap.Strings("patterns", patterns))

	outs := make(map[string][]byte)
	owners := make(map[string]string)
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}

		sg, err := New(pkg, outFile)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := sg.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if sg.NumRecords() == 0 {
			log.Debug("no records", zap.String("pkg", pkg.PkgPath))
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}

		for _, gen := range []struct {
			file string
			code []byte
		}{
			{outFile, sg.Generate()},
			{testOutFile(outFile, pkg.Name), sg.GenerateTest()},
		} {
			if len(gen.code) == 0 {
				continue
			}
			out := filepath.Join(outDir, gen.file)
			if prev, ok := owners[out]; ok {
				errs = errors.Join(errs, fmt.Errorf("%s: generated by both %s and %s", out, prev, pkg.PkgPath))
				continue
			}
			owners[out] = pkg.PkgPath
			outs[out] = gen.code
			log.Debug("generated", zap.String("pkg", pkg.PkgPath), zap.String("out", out))
		}
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// testOutFile names the output for the records declared in _test.go files of
// the package named pkgName. The external test package "p_test" shares the
// directory of "p" but not its scope, so it gets a file of its own.
//
//	testOutFile("sectiongen_gen.go", "p")      // "sectiongen_gen_test.go"
//	testOutFile("sectiongen_gen.go", "p_test") // "sectiongen_gen_ext_test.go"
func testOutFile(outFile, pkgName string) string {
	base := strings.TrimSuffix(outFile, ".go")
	if strings.HasSuffix(pkgName, "_test") {
		return base + "_ext_test.go"
	}
	return base + "_test.go"
}

// load loads packages. Type checking is skipped because the packages may call
// accessors which are not generated yet.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedSyntax,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=sectiongen"},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// With tests, a package appears again as its test variant. Keep the
	// variant with the most files.
	if tests {
		pkgs = dedupTestVariants(pkgs)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// dedupTestVariants drops the packages which are covered by another package
// with the same path and more files, such as "p" covered by "p [p.test]". The
// external test package "p_test" and the test main are kept apart.
func dedupTestVariants(pkgs []*packages.Package) []*packages.Package {
	best := make(map[string]*packages.Package)
	var order []string
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") {
			// Synthesized test main
			continue
		}
		prev, ok := best[pkg.PkgPath]
		if !ok {
			order = append(order, pkg.PkgPath)
		}
		if !ok || len(pkg.GoFiles) > len(prev.GoFiles) {
			best[pkg.PkgPath] = pkg
		}
	}

	out := make([]*packages.Package, 0, len(order))
	for _, path := range order {
		out = append(out, best[path])
	}
	return out
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
