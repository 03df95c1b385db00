package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//sectiongen:parser
type server struct {
	host    sectiongen.Option[string]
	port    sectiongen.Option[int]
	timeout sectiongen.Option[time.Duration]
}

type serverError = *sectiongenerrors.FieldError

func (s *server) missingFieldError(field string) serverError {
	return sectiongenerrors.Missing("server", field)
}

func (s *server) duplicateFieldError(field string, prior any) serverError {
	return sectiongenerrors.Duplicate("server", field, prior)
}

func (s *server) unexpectedFieldError(field string, leftover any) serverError {
	return sectiongenerrors.Unexpected("server", field, leftover)
}

func main() {
	var s server

	// Reading an unset field
	_, err := s.Host()
	fmt.Println(err, errors.Is(err, sectiongenerrors.ErrMissingField))

	// Setting a field twice reports the prior value and keeps neither
	_ = s.SetPort(80)
	err = s.SetPort(8080)
	var fe *sectiongenerrors.FieldError
	if errors.As(err, &fe) {
		fmt.Println(err, fe.Value)
	}
	_, err = s.Port()
	fmt.Println(err)

	// Reading drains the field
	_ = s.SetHost("localhost")
	host, _ := s.Host()
	_, err = s.Host()
	fmt.Println(host, err)

	// Leftovers are reported in declaration order
	_ = s.SetTimeout(time.Second)
	_ = s.SetPort(443)
	err = s.EnsureEmpty()
	if errors.As(err, &fe) {
		fmt.Println(err, fe.Value)
	}
	err = s.EnsureEmpty()
	if errors.As(err, &fe) {
		fmt.Println(err, fe.Value)
	}
	fmt.Println(s.EnsureEmpty())
}
