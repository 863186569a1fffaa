package lazyload

import "reflect"

// ValueCloner is an interface for cloning values.
// Loaded items are shared by every caller of a cache, so each caller receives
// clones to keep the cached data immutable.
// The CloneValue method should return a deep copy of the input value.
type ValueCloner[V ValueConstraint] interface {
	CloneValue(V) V
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[V ValueConstraint] func(v V) V

// CloneValue calls the function.
func (f ValueClonerFunc[V]) CloneValue(v V) V {
	return f(v)
}

// NopValueCloner is a value cloner that does not clone values.
// It is used when values do not need to be cloned. (e.g. primitive types, or callers that never mutate)
type NopValueCloner[V ValueConstraint] struct{}

// CloneValue returns the input value.
func (NopValueCloner[V]) CloneValue(v V) V {
	return v
}

// DefaultValueCloner returns a default cloner for the given value type.
// It uses the Clone or DeepCopy method of the type if any.
// Types made only of plain values (numbers, strings, and structs or arrays of them)
// get a NopValueCloner. Any other type panics.
func DefaultValueCloner[V ValueConstraint]() ValueCloner[V] {
	var zero V
	return defaultValueClonerAny[V](zero)
}

// CloneSlice returns a new slice holding clones of the items.
// It returns nil for a nil slice.
func CloneSlice[V ValueConstraint](cloner ValueCloner[V], items []V) []V {
	if items == nil {
		return nil
	}
	cloned := make([]V, len(items))
	for i, v := range items {
		cloned[i] = cloner.CloneValue(v)
	}
	return cloned
}

func defaultValueClonerAny[V ValueConstraint](v any) ValueCloner[V] {
	type cloner interface {
		Clone() V
	}
	type deepCopier interface {
		DeepCopy() V
	}

	switch v.(type) {
	case cloner:
		return ValueClonerFunc[V](func(v V) V {
			var a any = v
			return a.(cloner).Clone()
		})

	case deepCopier:
		return ValueClonerFunc[V](func(v V) V {
			var a any = v
			return a.(deepCopier).DeepCopy()
		})

	default:
		if !isPlainType(reflect.TypeOf(v)) {
			panic("value type does not have Clone or DeepCopy method")
		}
		return NopValueCloner[V]{}
	}
}

// isPlainType reports whether copying a value of the type by assignment is a deep copy.
func isPlainType(typ reflect.Type) bool {
	if typ == nil {
		return false
	}

	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return isPlainType(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if !isPlainType(typ.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
