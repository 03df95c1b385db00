package testdata

import (
	. "github.com/sublee/sectiongen"
	. "strings" // want `cannot dot-import "strings" in a file declaring sectiongen records`
)

//sectiongen:parser
type dotted struct {
	a Option[Builder]
}
