package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type information. It holds information of [types.Type]
// that is necessary to check what a record declares.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named

	Elem *Type
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

func (t Type) IsError() bool { return t.T == errorType }
func (t Type) IsAny() bool   { return types.Identical(t.T, anyType) }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

var (
	errorType = types.Universe.Lookup("error").Type()
	anyType   = types.Universe.Lookup("any").Type()
)

// Error is the built-in error type.
func Error() Type { return TypeOf(errorType) }

// Any is the empty interface.
func Any() Type { return TypeOf(anyType) }

// String is the predeclared string type.
func String() Type { return TypeOf(types.Typ[types.String]) }

// TypeOf inspects the given type and returns a new [Type]. Types other than
// the kinds described by [Type] are kept in T only.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	return Type{T: t}
}

// Pos returns the position where the type is defined. It returns token.NoPos
// if the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	if t.IsPointer() {
		return t.Deref().Pos()
	}
	return token.NoPos
}

// Ref returns the pointer type of the type. For type of X, it returns type of
// *X.
func (t Type) Ref() Type {
	return TypeOf(types.NewPointer(t.T))
}

// Deref returns the element type if the type is a pointer. For type of *X, it
// returns type of X. If the type is not a pointer, it returns the type itself.
func (t Type) Deref() Type {
	if t.IsPointer() {
		return (*t.Elem).Deref()
	}
	return t
}

// ImplementsError reports whether a value of the type can be returned as an
// error.
func (t Type) ImplementsError() bool {
	return types.AssignableTo(t.T, errorType)
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				return true
			}
		}
	case *types.Pointer:
		return isGeneric(t.Elem())
	case *types.TypeParam:
		return true
	}
	return false
}
