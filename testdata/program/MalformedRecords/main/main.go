package main

import "github.com/sublee/sectiongen"

//sectiongen:parser
type twoArgs struct {
	a sectiongen.Option[int, string]
}

//sectiongen:parser
type notType struct {
	a sectiongen.Option[nil]
}

//sectiongen:parser
type generic[T any] struct {
	a sectiongen.Option[T]
}

func main() {}
