// Package words splits identifiers into words and joins them back into Go
// names.
package words

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Split splits an identifier into the words between its underscores. Camel
// humps and digits stay inside their words:
//
//	Split("http_port")    // ["http" "port"]
//	Split("sectionName")  // ["sectionName"]
//	Split("__a__b2c_")    // ["a" "b2c"]
func Split(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
}

// Exported joins the words of name in PascalCase, dropping underscores. The
// rest of each word keeps its case, so camel humps and acronyms survive:
//
//	Exported("port")        // "Port"
//	Exported("sectionName") // "SectionName"
//	Exported("http_port")   // "HttpPort"
//	Exported("rawID")       // "RawID"
//
// It returns "" if name has no words other than underscores.
func Exported(name string) string {
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range Split(name) {
		b.WriteString(title.String(word))
	}
	return b.String()
}
