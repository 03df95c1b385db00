package main

import (
	time "example.com/ImportRename/clock"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

// The generated file imports clock under another name than time.
//
//sectiongen:parser
type tick struct {
	d sectiongen.Option[time.Duration]
}

type tickError = *sectiongenerrors.FieldError

func (t *tick) missingFieldError(field string) tickError {
	return sectiongenerrors.Missing("tick", field)
}

func (t *tick) duplicateFieldError(field string, prior any) tickError {
	return sectiongenerrors.Duplicate("tick", field, prior)
}

func (t *tick) unexpectedFieldError(field string, leftover any) tickError {
	return sectiongenerrors.Unexpected("tick", field, leftover)
}
