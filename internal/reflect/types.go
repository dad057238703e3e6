package reflect

import (
	"reflect"
	"sync"
)

var typeKeyCache sync.Map

// TypeKey derives the component key for T. Pointer, slice, map and channel
// shapes are part of the key; only the base type identity of T is used.
func TypeKey[T any]() string {
	return TypeKeyOf(TypeOf[T]())
}

// TypeKeyOf derives the component key for a reflected type.
func TypeKeyOf(t reflect.Type) string {
	if cached, ok := typeKeyCache.Load(t); ok {
		return cached.(string)
	}

	key := buildTypeKey(t)
	typeKeyCache.Store(t, key)
	return key
}

func buildTypeKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + buildTypeKey(t.Elem())
	case reflect.Slice:
		return "[]" + buildTypeKey(t.Elem())
	case reflect.Map:
		return "map[" + buildTypeKey(t.Key()) + "]" + buildTypeKey(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + buildTypeKey(t.Elem())
		case reflect.SendDir:
			return "chan<- " + buildTypeKey(t.Elem())
		default:
			return "chan " + buildTypeKey(t.Elem())
		}
	case reflect.Func:
		return t.String()
	default:
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		return t.Name()
	}
}

// TypeKeyFromValue derives the component key from a value's runtime type.
func TypeKeyFromValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	return TypeKeyOf(reflect.TypeOf(v))
}

// TypeKeyNamed derives the key for a named binding of T.
func TypeKeyNamed[T any](name string) string {
	return TypeKey[T]() + "#" + name
}

// TypeKeyNamedFromValue derives the key for a named binding of v's type.
func TypeKeyNamedFromValue(v any, name string) string {
	return TypeKeyFromValue(v) + "#" + name
}

// TypeName returns the short display name of T.
func TypeName[T any]() string {
	return TypeOf[T]().String()
}

// TypeOf returns the reflected type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		t = reflect.TypeOf((*T)(nil)).Elem()
	}
	return t
}

// IsNil reports whether v is nil, including typed nil pointers.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
