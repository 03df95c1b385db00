package withtests

import "github.com/sublee/sectiongen"

//sectiongen:parser
type A struct {
	n sectiongen.Option[int]
}
