// golangcilintsectiongen package provides a plugin for golangci-lint to
// integrate the Sectiongen analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-sectiongen binary that you can use to lint
// your Go code with the Sectiongen analyzer.
package golangcilintsectiongen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/sectiongen/pkg/sectiongenanalysis"
)

func init() {
	register.Plugin("sectiongen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return SectiongenLinter{}, nil
}

type SectiongenLinter struct{}

func (SectiongenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{sectiongenanalysis.Analyzer}, nil
}

// GetLoadMode requests type information for the checks of the error
// constructors.
func (SectiongenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
