// Package sectiontest declares a record whose accessors are generated by
// sectiongen. Tests of the driver regenerate sectiongen_gen.go and compare it
// with the committed one.
package sectiontest

import (
	"time"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//go:generate go run github.com/sublee/sectiongen/cmd/sectiongen

// UnderlyingType is a pair of a tag and a count.
type UnderlyingType[S any] struct {
	T   S
	Abc uint
}

// Test is a section with two pair fields and a duration.
//
//sectiongen:parser
type Test struct {
	a       sectiongen.Option[UnderlyingType[string]]
	b       sectiongen.Option[UnderlyingType[sectiongen.Option[string]]]
	timeout sectiongen.Option[time.Duration]

	// label has no accessors.
	label string
}

// NewTest returns a Test whose a is set.
func NewTest(a UnderlyingType[string]) *Test {
	return &Test{a: sectiongen.Some(a)}
}

// Label returns the label of the Test.
func (t *Test) Label() string { return t.label }

type TestError = *sectiongenerrors.FieldError

func (t *Test) missingFieldError(field string) TestError {
	return sectiongenerrors.Missing("Test", field)
}

func (t *Test) duplicateFieldError(field string, prior any) TestError {
	return sectiongenerrors.Duplicate("Test", field, prior)
}

func (t *Test) unexpectedFieldError(field string, leftover any) TestError {
	return sectiongenerrors.Unexpected("Test", field, leftover)
}
