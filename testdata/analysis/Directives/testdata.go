package testdata

import "github.com/sublee/sectiongen"

//sectiongen:parse // want `unknown directive "//sectiongen:parse"`
type typo struct{}

//sectiongen:parser // want `//sectiongen:parser must annotate a type declaration`
var notType = 42

func f() {
	//sectiongen:parser // want `//sectiongen:parser must annotate a type declaration`
	type local struct {
		a sectiongen.Option[int]
	}
	_ = local{}
}

// a note after the directive is ok
//
//sectiongen:parser // the empty record
type note struct{}

type (
	//sectiongen:parser
	grouped struct{}

	notGrouped struct{}
)
