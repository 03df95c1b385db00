package main

import (
	"time"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//sectiongen:parser
type wall struct {
	d sectiongen.Option[time.Duration]
}

type wallError = *sectiongenerrors.FieldError

func (w *wall) missingFieldError(field string) wallError {
	return sectiongenerrors.Missing("wall", field)
}

func (w *wall) duplicateFieldError(field string, prior any) wallError {
	return sectiongenerrors.Duplicate("wall", field, prior)
}

func (w *wall) unexpectedFieldError(field string, leftover any) wallError {
	return sectiongenerrors.Unexpected("wall", field, leftover)
}
