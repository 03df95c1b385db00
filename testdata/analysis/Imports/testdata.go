package testdata

import (
	. "github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

// a dot import of sectiongen makes Option bare
//
//sectiongen:parser
type dotted struct {
	a Option[int]
	b Option[Option[string]]
}

type dottedError = *sectiongenerrors.FieldError

func (*dotted) missingFieldError(field string) dottedError {
	return sectiongenerrors.Missing("dotted", field)
}

func (*dotted) duplicateFieldError(field string, prior any) dottedError {
	return sectiongenerrors.Duplicate("dotted", field, prior)
}

func (*dotted) unexpectedFieldError(field string, leftover any) dottedError {
	return sectiongenerrors.Unexpected("dotted", field, leftover)
}
