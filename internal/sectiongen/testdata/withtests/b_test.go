package withtests

import "github.com/sublee/sectiongen"

//sectiongen:parser
type B struct {
	s sectiongen.Option[string]
}
