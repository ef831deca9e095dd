package internal

import (
	"math"
	"strconv"
)

// value is a runtime value. The set of implementations is closed:
// loxNil, loxBool, loxNumber, loxString, *loxFunction, *nativeFn,
// *loxClass and *loxInstance.
type value interface {
	String() string
	isValue()
}

type loxNil struct{}

type loxBool bool

type loxNumber float64

type loxString string

func (loxNil) isValue()    {}
func (loxBool) isValue()   {}
func (loxNumber) isValue() {}
func (loxString) isValue() {}

func (loxNil) String() string {
	return "nil"
}

func (b loxBool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s loxString) String() string {
	return "\"" + string(s) + "\""
}

// truthy returns false only for nil and false
func truthy(v value) bool {
	switch v := v.(type) {
	case loxNil:
		return false
	case loxBool:
		return bool(v)
	}
	return v != nil
}

// valuesEqual compares values of the same kind; values of different kinds are never equal
func valuesEqual(a, b value) bool {
	switch a := a.(type) {
	case loxNil:
		_, ok := b.(loxNil)
		return ok
	case loxBool:
		other, ok := b.(loxBool)
		return ok && a == other
	case loxNumber:
		other, ok := b.(loxNumber)
		return ok && a == other
	case loxString:
		other, ok := b.(loxString)
		return ok && a == other
	case *loxFunction:
		other, ok := b.(*loxFunction)
		return ok && a.declaration == other.declaration && a.closure == other.closure
	case *nativeFn:
		other, ok := b.(*nativeFn)
		return ok && a == other
	case *loxClass:
		other, ok := b.(*loxClass)
		return ok && a == other
	case *loxInstance:
		other, ok := b.(*loxInstance)
		return ok && a.id == other.id
	}
	return false
}
