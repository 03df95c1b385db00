package main

import (
	"fmt"

	. "github.com/sublee/sectiongen"
	"github.com/sublee/sectiongen/pkg/sectiongenerrors"
)

//sectiongen:parser
type names struct {
	first  Option[string]
	middle Option[Option[string]]
}

type namesError = *sectiongenerrors.FieldError

func (n *names) missingFieldError(field string) namesError {
	return sectiongenerrors.Missing("names", field)
}

func (n *names) duplicateFieldError(field string, prior any) namesError {
	return sectiongenerrors.Duplicate("names", field, prior)
}

func (n *names) unexpectedFieldError(field string, leftover any) namesError {
	return sectiongenerrors.Unexpected("names", field, leftover)
}

func main() {
	n := names{first: Some("Ada")}
	_ = n.SetMiddle(Some("King"))

	first, _ := n.First()
	middle, _ := n.Middle()

	// Output: Ada Set(King) <nil>
	fmt.Println(first, middle, n.EnsureEmpty())
}
