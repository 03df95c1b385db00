package main

import (
	"fmt"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

type pair[S any] struct {
	T   S
	Abc uint
}

//sectiongen:parser
type test struct {
	a sectiongen.Option[pair[string]]
	b sectiongen.Option[pair[sectiongen.Option[string]]]
}

type testError = *sectiongenerrors.FieldError

func (t *test) missingFieldError(field string) testError {
	return sectiongenerrors.Missing("test", field)
}

func (t *test) duplicateFieldError(field string, prior any) testError {
	return sectiongenerrors.Duplicate("test", field, prior)
}

func (t *test) unexpectedFieldError(field string, leftover any) testError {
	return sectiongenerrors.Unexpected("test", field, leftover)
}

func main() {
	r := &test{a: sectiongen.Some(pair[string]{T: "acb", Abc: 2})}

	a, err := r.A()
	fmt.Println(a.T, a.Abc, err)

	err = r.SetB(pair[sectiongen.Option[string]]{Abc: 3})
	fmt.Println(err)

	b, err := r.B()
	fmt.Println(b.T, b.Abc, err)

	fmt.Println(r.EnsureEmpty())
}
