// Package sectiongen provides the optional field type for write-once,
// read-once section records.
//
// A section of a structured document often carries sub-fields in any order,
// each of which may appear at most once. While a parser assembles such a
// section, every sub-field must be stored once, and once the section is
// complete, every stored value must have been consumed exactly once.
// Sectiongen generates the accessors that enforce this discipline.
//
// Declare a record with the //sectiongen:parser directive and wrap each
// guarded field in [Option]:
//
//	//sectiongen:parser
//	type Server struct {
//		host sectiongen.Option[string]
//		port sectiongen.Option[int]
//	}
//
// Then run the sectiongen command. It will generate sectiongen_gen.go for your
// package:
//
//	go run github.com/sublee/sectiongen/cmd/sectiongen
//
// For each optional field, a getter, a setter, and a shared emptiness check
// are generated:
//
//	// generated: (simplified)
//	func (s *Server) Host() (string, error)   // takes the value out of host
//	func (s *Server) SetHost(host string) error // stores host at most once
//	func (s *Server) Port() (int, error)
//	func (s *Server) SetPort(port int) error
//	func (s *Server) EnsureEmpty() error      // checks nothing is left over
//
// Fields of any other type are left alone.
//
// # Errors
//
// The generated accessors never build errors themselves. The record author
// provides three constructors returning the error carrier type, which is named
// after the record with an "Error" suffix:
//
//	type ServerError = *sectiongenerrors.FieldError
//
//	func (s *Server) missingFieldError(field string) ServerError {
//		return sectiongenerrors.Missing("Server", field)
//	}
//
//	func (s *Server) duplicateFieldError(field string, prior any) ServerError {
//		return sectiongenerrors.Duplicate("Server", field, prior)
//	}
//
//	func (s *Server) unexpectedFieldError(field string, leftover any) ServerError {
//		return sectiongenerrors.Unexpected("Server", field, leftover)
//	}
//
// A getter on an unset field fails with the missing field error. A setter on a
// set field fails with the duplicate field error carrying the value that was
// already there, and leaves the field unset; the new value is not stored.
// EnsureEmpty drains every field in declaration order and fails with the
// unexpected field error for the first field still set.
//
// A record is owned by one goroutine at a time. Discard it after EnsureEmpty.
package sectiongen

import "fmt"

// Option is a slot which is either unset or holds one value. The zero value
// is unset.
//
// Records use Option for fields guarded by generated accessors. The accessors
// drain the slot on every read, so a value has at most one owner at a time.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// Take moves the value out of the slot, leaving it unset. It reports false if
// the slot was already unset.
func (o *Option[T]) Take() (T, bool) {
	v, ok := o.value, o.set
	*o = Option[T]{}
	return v, ok
}

// Set stores v in the slot, replacing any value. Generated setters call it
// only on an unset slot.
func (o *Option[T]) Set(v T) {
	o.value = v
	o.set = true
}

// IsSet reports whether the slot holds a value.
func (o Option[T]) IsSet() bool {
	return o.set
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.set {
		return "Unset"
	}
	return fmt.Sprintf("Set(%v)", o.value)
}
