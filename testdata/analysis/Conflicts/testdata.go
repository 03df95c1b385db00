package testdata

import "github.com/sublee/sectiongen"

//sectiongen:parser
type sameWords struct {
	a_b sectiongen.Option[int]
	aB  sectiongen.Option[int] // want `record sameWords: field aB generates AB which is already generated for field a_b at .*testdata.go:7:2` `record sameWords: field aB generates SetAB which is already generated for field a_b at .*testdata.go:7:2`
}

//sectiongen:parser
type fieldConflict struct {
	port sectiongen.Option[int] // want `record fieldConflict: field port generates Port which conflicts with field Port at .*testdata.go:14:2`
	Port int
}

//sectiongen:parser
type methodConflict struct {
	host sectiongen.Option[string] // want `record methodConflict: field host generates SetHost which conflicts with method SetHost at .*testdata.go:22:26`
}

func (m *methodConflict) SetHost(host string) {}

//sectiongen:parser
type ensureEmpty struct { // want `record ensureEmpty: record ensureEmpty generates EnsureEmpty which conflicts with method EnsureEmpty at .*testdata.go:28:20`
}

func (ensureEmpty) EnsureEmpty() error { return nil }

//sectiongen:parser
type unexported struct {
	_1 sectiongen.Option[int] // want `record unexported: cannot derive an exported accessor name from field _1`
}
