package bloom

import (
	"encoding/binary"
	"math"
	"reflect"
)

func appendU64BE(b []byte, v uint64) []byte { return binary.BigEndian.AppendUint64(b, v) }
func appendU32BE(b []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(b, v) }

// appendKey appends the byte encoding of key to dst. Keys that compare equal
// with == always encode to the same bytes.
//
// Strings are appended raw. Integers are widened to 64 bits and written
// big-endian, floats as their IEEE-754 bits with -0 folded into 0, bools as
// a single byte. Structs, arrays and interfaces are walked field by field
// (see appendValue); pointers and channels encode their address, as == does.
func appendKey(dst []byte, key any) []byte {
	switch v := key.(type) {
	case string:
		return append(dst, v...)
	case bool:
		return appendBool(dst, v)
	case int:
		return appendU64BE(dst, uint64(v))
	case int8:
		return appendU64BE(dst, uint64(v))
	case int16:
		return appendU64BE(dst, uint64(v))
	case int32:
		return appendU64BE(dst, uint64(v))
	case int64:
		return appendU64BE(dst, uint64(v))
	case uint:
		return appendU64BE(dst, uint64(v))
	case uint8:
		return appendU64BE(dst, uint64(v))
	case uint16:
		return appendU64BE(dst, uint64(v))
	case uint32:
		return appendU64BE(dst, uint64(v))
	case uint64:
		return appendU64BE(dst, v)
	case uintptr:
		return appendU64BE(dst, uint64(v))
	case float32:
		return appendFloat32(dst, v)
	case float64:
		return appendFloat64(dst, v)
	}
	return appendValue(dst, reflect.ValueOf(key))
}

func appendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func appendFloat32(dst []byte, v float32) []byte {
	if v == 0 {
		v = 0 // -0 == 0
	}
	return appendU32BE(dst, math.Float32bits(v))
}

func appendFloat64(dst []byte, v float64) []byte {
	if v == 0 {
		v = 0
	}
	return appendU64BE(dst, math.Float64bits(v))
}

// appendValue encodes v following the rules of == for its kind. Strings
// nested in composites are length prefixed so that adjacent fields cannot
// run together.
func appendValue(dst []byte, v reflect.Value) []byte {
	if !v.IsValid() {
		// nil interface
		return append(dst, 0)
	}
	switch v.Kind() {
	case reflect.String:
		s := v.String()
		dst = appendU64BE(dst, uint64(len(s)))
		return append(dst, s...)
	case reflect.Bool:
		return appendBool(dst, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return appendU64BE(dst, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return appendU64BE(dst, v.Uint())
	case reflect.Float32:
		return appendFloat32(dst, float32(v.Float()))
	case reflect.Float64:
		return appendFloat64(dst, v.Float())
	case reflect.Complex64:
		c := v.Complex()
		dst = appendFloat32(dst, float32(real(c)))
		return appendFloat32(dst, float32(imag(c)))
	case reflect.Complex128:
		c := v.Complex()
		dst = appendFloat64(dst, real(c))
		return appendFloat64(dst, imag(c))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			dst = appendValue(dst, v.Index(i))
		}
		return dst
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			// == ignores blank fields.
			if t.Field(i).Name == "_" {
				continue
			}
			dst = appendValue(dst, v.Field(i))
		}
		return dst
	case reflect.Interface:
		if v.IsNil() {
			return append(dst, 0)
		}
		e := v.Elem()
		dst = append(dst, 1)
		dst = append(dst, e.Type().String()...)
		return appendValue(dst, e)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return appendU64BE(dst, uint64(v.Pointer()))
	}
	// Maps, slices and funcs are not comparable and cannot be keys.
	panic("bloom: key of kind " + v.Kind().String() + " is not comparable")
}
