package testdata

import (
	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//sectiongen:parser
type generic[T any] struct { // want `record generic: generic types are not supported`
	a sectiongen.Option[T]
}

//sectiongen:parser
type alias = struct{} // want `record alias: requires a struct type, not an alias`

//sectiongen:parser
type number int // want `record number: requires a struct type, got int`

//sectiongen:parser
type blank struct {
	_ sectiongen.Option[int] // want `record blank: blank field cannot be sectiongen.Option\[int\]`
}

type inner struct {
	b sectiongen.Option[int]
}

// only direct fields of Option type get accessors
//
//sectiongen:parser
type fields struct {
	inner
	a     sectiongen.Option[sectiongen.Option[int]]
	ptr   *sectiongen.Option[int]
	slice []sectiongen.Option[int]
	plain int
	x, y  sectiongen.Option[string]
	paren (sectiongen.Option[bool])
}

type fieldsError = *sectiongenerrors.FieldError

func (*fields) missingFieldError(field string) fieldsError { return sectiongenerrors.Missing("fields", field) }
func (*fields) duplicateFieldError(field string, prior any) fieldsError {
	return sectiongenerrors.Duplicate("fields", field, prior)
}
func (*fields) unexpectedFieldError(field string, leftover any) fieldsError {
	return sectiongenerrors.Unexpected("fields", field, leftover)
}
