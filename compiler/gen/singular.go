package gen

// SingularForm is the resolved singular name of a sequence or set option,
// together with the generated single-element adder method derived from it.
type SingularForm struct {
	// Name is the singular element name, e.g. "line" for option "lines".
	Name string
	// Method is the adder method name, e.g. "AddLine".
	Method string
}

// ResolveSingular determines the singular form of a collection option.
// An explicit singular name on the option wins over the heuristic, and an
// explicit method name wins over the derived "Add" + PascalCase(singular)
// form. Resolution is deterministic: the same option always yields the
// same form. Options that are not sequences or sets have no singular form
// and fail with a ShapeError.
func ResolveSingular(o *Option) (SingularForm, error) {
	if !o.Shape.Collection() {
		return SingularForm{}, NewShapeError(o.blueprintName(), o.Name, o.Shape,
			"singular form applies to sequence and set options only")
	}
	name := o.Singular
	if name == "" {
		s, err := Singularize(o.Name)
		if err != nil {
			if ne, ok := err.(*NameError); ok {
				ne.Blueprint = o.blueprintName()
			}
			return SingularForm{}, err
		}
		name = s
	} else if err := validIdent(o.blueprintName(), name); err != nil {
		return SingularForm{}, err
	}
	method := o.SingularMethod
	if method == "" {
		method = "Add" + pascal(name)
	} else if err := validIdent(o.blueprintName(), method); err != nil {
		return SingularForm{}, err
	}
	return SingularForm{Name: name, Method: method}, nil
}
