package sectiongeninternal

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

// Diff renders a line diff from old to new for the file at path. It returns
// an empty string if they are the same. A missing file is diffed as empty.
//
//	--- a/sectiongen_gen.go
//	+++ b/sectiongen_gen.go
//	@@
//	 func (s *Server) Host() (string, error) {
//	-	v, ok := s.host.Take()
//	+	host, ok := s.host.Take()
func Diff(path string, old, new []byte) string {
	if string(old) == string(new) {
		return ""
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	type line struct {
		op   byte
		text string
	}
	var ops []line
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = ' '
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			ops = append(ops, line{op, strings.TrimSuffix(text, "\n")})
		}
	}

	// Mark lines close enough to a change.
	show := make([]bool, len(ops))
	for i, l := range ops {
		if l.op == ' ' {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(ops)-1, i+diffContext); j++ {
			show[j] = true
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for i, l := range ops {
		if !show[i] {
			continue
		}
		if i == 0 || !show[i-1] {
			b.WriteString("@@\n")
		}
		b.WriteByte(l.op)
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}
