package main

import "github.com/sublee/sectiongen"

//sectiongen:parser
type section struct {
	name_    sectiongen.Option[string]
	name     sectiongen.Option[string]
	Priority int
	priority sectiongen.Option[int]
}

func (s *section) SetName(name string) {}

func main() {}
