package main

import (
	"errors"
	"fmt"

	"github.com/sublee/sectiongen"
)

// sectionError is a hand-written error carrier instead of
// sectiongenerrors.FieldError.
type sectionError struct {
	section string
	msg     string
}

func (e *sectionError) Error() string {
	return fmt.Sprintf("[%s] %s", e.section, e.msg)
}

//sectiongen:parser
type listen struct {
	addr sectiongen.Option[string]
	tls  sectiongen.Option[bool]
}

type listenError = *sectionError

func (l *listen) missingFieldError(field string) listenError {
	return &sectionError{"listen", field + " is required"}
}

func (l *listen) duplicateFieldError(field string, prior any) listenError {
	return &sectionError{"listen", fmt.Sprintf("%s was already %v", field, prior)}
}

func (l *listen) unexpectedFieldError(field string, leftover any) listenError {
	return &sectionError{"listen", fmt.Sprintf("%s=%v is not supported", field, leftover)}
}

func main() {
	var l listen

	_, err := l.Addr()
	fmt.Println(err)

	_ = l.SetTls(true)
	err = l.SetTls(false)
	fmt.Println(err)

	_ = l.SetTls(true)
	err = l.EnsureEmpty()
	var se *sectionError
	fmt.Println(err, errors.As(err, &se))
}
