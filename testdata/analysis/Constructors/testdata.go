package testdata

import (
	"errors"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

// all constructors on pointer receivers
//
//sectiongen:parser
type good struct {
	a sectiongen.Option[int]
}

type goodError = *sectiongenerrors.FieldError

func (g *good) missingFieldError(field string) goodError {
	return sectiongenerrors.Missing("good", field)
}

func (g *good) duplicateFieldError(field string, prior any) goodError {
	return sectiongenerrors.Duplicate("good", field, prior)
}

func (g *good) unexpectedFieldError(field string, leftover any) goodError {
	return sectiongenerrors.Unexpected("good", field, leftover)
}

// value receivers and a defined error type are ok
//
//sectiongen:parser
type value struct {
	a sectiongen.Option[string]
}

type valueError error

func (value) missingFieldError(field string) valueError { return errors.New(field) }
func (value) duplicateFieldError(field string, prior interface{}) valueError { return errors.New(field) }
func (value) unexpectedFieldError(field string, leftover any) valueError { return errors.New(field) }

// no fields, no constructors
//
//sectiongen:parser
type empty struct{}

//sectiongen:parser
type noCarrier struct { // want `record noCarrier: noCarrierError is not declared`
	a sectiongen.Option[int]
}

//sectiongen:parser
type notError struct { // want `record notError: notErrorError does not implement error`
	a sectiongen.Option[int]
}

type notErrorError = string

func (*notError) missingFieldError(field string) notErrorError { return field }
func (*notError) duplicateFieldError(field string, prior any) notErrorError { return field }
func (*notError) unexpectedFieldError(field string, leftover any) notErrorError { return field }

//sectiongen:parser
type missing struct { // want `record missing: missing method unexpectedFieldError\(field string, leftover any\) missingError`
	a sectiongen.Option[int]
}

type missingError = error

func (*missing) missingFieldError(field string) missingError { return nil }
func (*missing) duplicateFieldError(field string, prior any) missingError { return nil }

//sectiongen:parser
type wrong struct {
	a sectiongen.Option[int]
}

type wrongError = error

func (*wrong) missingFieldError(field string) wrongError { return nil }
func (*wrong) duplicateFieldError(field string, prior int) wrongError { return nil } // want `record wrong: method duplicateFieldError has signature func\(field string, prior int\) wrongError, want func\(field string, prior any\) wrongError`
func (*wrong) unexpectedFieldError(field string, leftover any) error { return nil }
