package simplesort

import (
	"cmp"
	"fmt"
	"reflect"
)

// Subtract is the default numeric comparator. It returns the sign of a - b without
// computing the difference, so unsigned values never wrap around and large signed
// values never overflow. NaN compares equal to everything.
func Subtract[T Number](a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// Reverse returns a comparator ordering elements from largest to smallest under c.
// A nil c reverses the default comparator.
func Reverse[E any](c Comparator[E]) Comparator[E] {
	c = orDefault(c)
	return func(a, b E) int {
		return c(b, a)
	}
}

// By returns a comparator ordering records by the key extracted from each of them.
func By[E any, K cmp.Ordered](key func(E) K) Comparator[E] {
	return func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	}
}

// orDefault substitutes the default comparator for a missing one
func orDefault[E any](c Comparator[E]) Comparator[E] {
	if c == nil {
		return defaultCompare[E]
	}
	return c
}

type numberClass int

const (
	notNumber numberClass = iota
	signedNumber
	unsignedNumber
	floatNumber
)

func classify(v reflect.Value) numberClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	default:
		return notNumber
	}
}

func asFloat(v reflect.Value, c numberClass) float64 {
	switch c {
	case signedNumber:
		return float64(v.Int())
	case unsignedNumber:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// defaultCompare orders any numeric kind ascending, including named numeric types and
// numbers stored in interface values. It panics with a ComparisonError wrapping
// ErrNotNumeric for every other kind.
func defaultCompare[E any](a, b E) int {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	ca, cb := classify(va), classify(vb)
	if ca == notNumber || cb == notNumber {
		bad := va
		if ca != notNumber {
			bad = vb
		}
		panic(NewComparisonError(fmt.Errorf("%w, got %s", ErrNotNumeric, describe(bad)), ""))
	}
	if ca == cb {
		switch ca {
		case signedNumber:
			return Subtract(va.Int(), vb.Int())
		case unsignedNumber:
			return Subtract(va.Uint(), vb.Uint())
		}
	}
	return Subtract(asFloat(va, ca), asFloat(vb, cb))
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
