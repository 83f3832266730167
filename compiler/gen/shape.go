package gen

import (
	"fmt"

	"github.com/stencilgen/stencil/blueprint/option"
)

// OpKind enumerates the accessor operations a synthesized builder exposes
// for one option.
type OpKind int

const (
	// OpGet reads the current value.
	OpGet OpKind = iota
	// OpSet assigns a scalar, or replaces the full contents of a sequence
	// or set (clear then insert).
	OpSet
	// OpAppend inserts all given elements into a sequence or set.
	OpAppend
	// OpAdd inserts a single element; named from the singular form.
	OpAdd
	// OpClear removes all elements.
	OpClear
	// OpPut assigns one key/value pair of a mapping.
	OpPut
	// OpPutAll assigns all pairs of a given mapping.
	OpPutAll
)

var opNames = [...]string{
	OpGet:    "get",
	OpSet:    "set",
	OpAppend: "append",
	OpAdd:    "add",
	OpClear:  "clear",
	OpPut:    "put",
	OpPutAll: "put-all",
}

// String returns the textual name of the operation kind.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("invalid(%d)", k)
}

// Operation is one generated accessor of an option.
type Operation struct {
	// Kind of the operation.
	Kind OpKind
	// Name is the generated method name.
	Name string
	// Token marks write operations of provider-driven options, which
	// additionally accept a provider-lookup token.
	Token bool
}

// AccessorSet enumerates the generated operations for one option, in the
// order they are emitted.
type AccessorSet struct {
	Option *Option
	Ops    []Operation
}

// Op returns the operation of the given kind, if present.
func (a *AccessorSet) Op(kind OpKind) (Operation, bool) {
	for _, op := range a.Ops {
		if op.Kind == kind {
			return op, true
		}
	}
	return Operation{}, false
}

// Has reports whether the set contains an operation of the given kind.
func (a *AccessorSet) Has(kind OpKind) bool {
	_, ok := a.Op(kind)
	return ok
}

// Names returns the generated method names in emission order.
func (a *AccessorSet) Names() []string {
	names := make([]string, len(a.Ops))
	for i, op := range a.Ops {
		names[i] = op.Name
	}
	return names
}

// Synthesize derives the accessor surface of an option from its container
// shape:
//
//	scalar    getter, setter
//	sequence  getter, replace-setter, append-adder, singular-adder, clear
//	set       like sequence, with set semantics in the generated container
//	mapping   getter, put-one, put-all, clear
//
// The singular adder exists only for sequences and sets; an option of
// another shape carrying singular overrides fails with a ShapeError.
// When the singular form is identical to the option name ("data"), the
// singular adder would share the append adder's name and collapses into
// it, so OpAdd may be absent from a sequence or set accessor set.
//
// The single-value write operations of provider-driven options are
// marked token-accepting: the scalar setter, the singular adder and the
// mapping put-one. Multi-value operations take literal values only.
func Synthesize(o *Option) (*AccessorSet, error) {
	if (o.Singular != "" || o.SingularMethod != "") && !o.Shape.Collection() {
		return nil, NewShapeError(o.blueprintName(), o.Name, o.Shape,
			"singular overrides apply to sequence and set options only")
	}
	p := pascal(o.Name)
	tok := o.Provider
	var ops []Operation
	switch o.Shape {
	case option.Scalar:
		ops = []Operation{
			{Kind: OpGet, Name: p},
			{Kind: OpSet, Name: "Set" + p, Token: tok},
		}
	case option.Sequence, option.Set:
		form := o.singular
		if form == nil {
			f, err := ResolveSingular(o)
			if err != nil {
				return nil, err
			}
			form = &f
		}
		ops = []Operation{
			{Kind: OpGet, Name: p},
			{Kind: OpSet, Name: "Set" + p},
			{Kind: OpAppend, Name: "Add" + p},
		}
		// Uncountable names singularize to themselves; the singular adder
		// would shadow the append adder, so it collapses into it.
		if form.Method != "Add"+p {
			ops = append(ops, Operation{Kind: OpAdd, Name: form.Method, Token: tok})
		}
		ops = append(ops, Operation{Kind: OpClear, Name: "Clear" + p})
	case option.Mapping:
		// The put-one name uses the bare heuristic, never the singular
		// resolver: mappings have no singular form to override.
		one := pascal(rules.Singularize(o.Name))
		ops = []Operation{
			{Kind: OpGet, Name: p},
			{Kind: OpPut, Name: "Put" + one, Token: tok},
			{Kind: OpPutAll, Name: "PutAll" + p},
			{Kind: OpClear, Name: "Clear" + p},
		}
	default:
		return nil, NewShapeError(o.blueprintName(), o.Name, o.Shape, "option has no shape")
	}
	return &AccessorSet{Option: o, Ops: ops}, nil
}
