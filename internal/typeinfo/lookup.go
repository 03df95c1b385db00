package typeinfo

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Lookup finds methods of types. Method sets are cached, so one Lookup
// should serve a whole package.
type Lookup struct {
	msets typeutil.MethodSetCache
}

// NewLookup creates a new [Lookup].
func NewLookup() *Lookup {
	return &Lookup{}
}

// Method finds the method with the given name callable on an addressable
// value of the type, declared on either a value or a pointer receiver.
func (l *Lookup) Method(t Type, name string) (Func, bool) {
	for _, sel := range typeutil.IntuitiveMethodSet(t.Deref().T, &l.msets) {
		if sel.Obj().Name() != name {
			continue
		}
		fn, err := FuncOf(sel.Obj())
		if err != nil {
			return Func{}, false
		}
		return fn, true
	}
	return Func{}, false
}

// Declared returns the type named name in the package scope.
func Declared(pkg *types.Package, name string) (Type, bool) {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return Type{}, false
	}
	return TypeOf(obj.Type()), true
}
