package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/gen"
)

// goType returns the Go type of an element.
func goType(ti *option.TypeInfo) (jen.Code, error) {
	if ti == nil {
		return nil, fmt.Errorf("missing type information")
	}
	if ti.Custom() {
		if ti.PkgPath != "" {
			return jen.Qual(ti.PkgPath, ti.Ident), nil
		}
		return jen.Id(ti.Ident), nil
	}
	switch ti.Type {
	case option.TypeString:
		return jen.String(), nil
	case option.TypeInt:
		return jen.Int(), nil
	case option.TypeInt64:
		return jen.Int64(), nil
	case option.TypeFloat64:
		return jen.Float64(), nil
	case option.TypeBool:
		return jen.Bool(), nil
	case option.TypeTime:
		return jen.Qual("time", "Time"), nil
	case option.TypeBytes:
		return jen.Index().Byte(), nil
	case option.TypeAny:
		return jen.Any(), nil
	default:
		return nil, fmt.Errorf("unsupported element type %q", ti.Type)
	}
}

// keyable reports whether the type can key a generated map. Set elements
// and mapping keys must be comparable; bytes and any are not.
func keyable(ti *option.TypeInfo) bool {
	if ti == nil {
		return false
	}
	if ti.Custom() {
		// Custom types are trusted to be comparable; the generated code
		// fails to compile otherwise, which is the desired signal.
		return true
	}
	switch ti.Type {
	case option.TypeBytes, option.TypeAny:
		return false
	}
	return true
}

// containerType returns the generated storage type of an option: the bare
// element type for scalars, a slice for sequences, a struct{}-valued map
// for sets and a map for mappings.
func containerType(o *gen.Option) (jen.Code, error) {
	elem, err := goType(o.Elem)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", o.Name, err)
	}
	switch o.Shape {
	case option.Scalar:
		return elem, nil
	case option.Sequence:
		return jen.Index().Add(elem), nil
	case option.Set:
		if !keyable(o.Elem) {
			return nil, fmt.Errorf("option %q: %s is not usable as a set element", o.Name, o.Elem)
		}
		return jen.Map(elem).Struct(), nil
	case option.Mapping:
		if !keyable(o.Key) {
			return nil, fmt.Errorf("option %q: %s is not usable as a mapping key", o.Name, o.Key)
		}
		key, err := goType(o.Key)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", o.Name, err)
		}
		return jen.Map(key).Add(elem), nil
	default:
		return nil, fmt.Errorf("option %q: unsupported shape %q", o.Name, o.Shape)
	}
}

// defaultLit returns the typed literal for a declared default value, as
// seeded into the builder state by the generated constructor. Only scalar
// defaults of the declared element types are supported.
func defaultLit(o *gen.Option, v any) (jen.Code, error) {
	if o.Shape != option.Scalar || o.Elem == nil || o.Elem.Custom() {
		return nil, fmt.Errorf("option %q: unsupported default value %v", o.Name, v)
	}
	fail := func() (jen.Code, error) {
		return nil, fmt.Errorf("option %q: default value %v is not a %s", o.Name, v, o.Elem)
	}
	switch o.Elem.Type {
	case option.TypeString:
		s, ok := v.(string)
		if !ok {
			return fail()
		}
		return jen.Lit(s), nil
	case option.TypeBool:
		b, ok := v.(bool)
		if !ok {
			return fail()
		}
		return jen.Lit(b), nil
	case option.TypeInt:
		n, ok := intValue(v)
		if !ok {
			return fail()
		}
		return jen.Lit(int(n)), nil
	case option.TypeInt64:
		n, ok := intValue(v)
		if !ok {
			return fail()
		}
		return jen.Int64().Call(jen.Lit(int(n))), nil
	case option.TypeFloat64:
		switch f := v.(type) {
		case float64:
			return jen.Lit(f), nil
		case float32:
			return jen.Lit(float64(f)), nil
		default:
			if n, ok := intValue(v); ok {
				return jen.Float64().Call(jen.Lit(int(n))), nil
			}
			return fail()
		}
	default:
		return nil, fmt.Errorf("option %q: unsupported default value %v for %s", o.Name, v, o.Elem)
	}
}

// intValue normalizes the integer types YAML and JSON decoders produce.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
