package withtests_test

import "github.com/sublee/sectiongen"

//sectiongen:parser
type C struct {
	ok sectiongen.Option[bool]
}
