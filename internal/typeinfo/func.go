package typeinfo

import (
	"fmt"
	"go/token"
	"go/types"
)

// Func describes a method or function. It holds the signature information of
// a [types.Func] needed to compare it with an expected shape.
type Func struct {
	Obj *types.Func
	Sig *types.Signature

	Params  []Type
	Results []Type
}

func (fn Func) Name() string   { return fn.Obj.Name() }
func (fn Func) Pos() token.Pos { return fn.Obj.Pos() }

// PtrRecv reports whether the method is declared on a pointer receiver.
func (fn Func) PtrRecv() bool {
	recv := fn.Sig.Recv()
	return recv != nil && TypeOf(recv.Type()).IsPointer()
}

// FuncOf inspects the given function object and returns a new [Func].
func FuncOf(obj types.Object) (Func, error) {
	fnObj, ok := obj.(*types.Func)
	if !ok {
		return Func{}, fmt.Errorf("%s is not a function", obj.Name())
	}
	sig, ok := fnObj.Type().Underlying().(*types.Signature)
	if !ok {
		return Func{}, fmt.Errorf("func: not signature type")
	}

	fn := Func{Obj: fnObj, Sig: sig}
	for v := range sig.Params().Variables() {
		fn.Params = append(fn.Params, TypeOf(v.Type()))
	}
	for v := range sig.Results().Variables() {
		fn.Results = append(fn.Results, TypeOf(v.Type()))
	}
	return fn, nil
}

// Param is a named parameter of an expected signature.
type Param struct {
	Name string
	Type Type
}

// NewSignature builds a signature without receiver from named parameters and
// a single unnamed result.
func NewSignature(pkg *types.Package, params []Param, result Type) *types.Signature {
	vars := make([]*types.Var, len(params))
	for i, p := range params {
		vars[i] = types.NewParam(token.NoPos, pkg, p.Name, p.Type.T)
	}
	res := types.NewParam(token.NoPos, pkg, "", result.T)
	return types.NewSignatureType(nil, nil, nil, types.NewTuple(vars...), types.NewTuple(res), false)
}

// Match returns an error if the signature of the function differs from want
// in its parameter or result types. Names and the receiver are ignored.
//
//	method has signature func(field int) RError, want func(field string) RError
func (fn Func) Match(want *types.Signature, qf types.Qualifier) error {
	mismatch := func() error {
		have := types.NewSignatureType(nil, nil, nil, fn.Sig.Params(), fn.Sig.Results(), fn.Sig.Variadic())
		return fmt.Errorf("%s has signature %s, want %s",
			fn.Name(),
			types.TypeString(have, qf),
			types.TypeString(want, qf),
		)
	}

	if fn.Sig.Variadic() != want.Variadic() {
		return mismatch()
	}
	if len(fn.Params) != want.Params().Len() || len(fn.Results) != want.Results().Len() {
		return mismatch()
	}
	for i, p := range fn.Params {
		if !types.Identical(p.T, want.Params().At(i).Type()) {
			return mismatch()
		}
	}
	for i, r := range fn.Results {
		if !types.Identical(r.T, want.Results().At(i).Type()) {
			return mismatch()
		}
	}
	return nil
}
