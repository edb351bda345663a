package typeutils

import "reflect"

// Assign converts v to T the way an assignment would: through a type assertion,
// or through a conversion when v's type is assignable to T without being T, e.g.
// []string to a named slice type. A nil v is assignable to interface types only.
func Assign[T any](v any) (T, bool) {
	if out, ok := v.(T); ok {
		return out, true
	}

	var zero T
	target := reflect.TypeFor[T]()

	if v == nil {
		return zero, target.Kind() == reflect.Interface
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(target) {
		return zero, false
	}

	out, ok := val.Convert(target).Interface().(T)
	return out, ok
}

// Name returns the package qualified name of t, e.g. "*github.com/x/chat.Created".
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Name(t.Elem())
	case reflect.Slice:
		return "[]" + Name(t.Elem())
	default:
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
