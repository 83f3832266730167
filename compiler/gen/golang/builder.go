package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/gen"
)

// genBuilder emits the builder of a blueprint: the builder struct, its
// constructor seeding declared and decorator defaults, one method per
// synthesized write accessor, token variants for provider-driven options
// and the Build method resolving pending tokens and assembling the
// prototype.
func (g *Generator) genBuilder(f *jen.File, art *gen.Artifact) error {
	t := art.Blueprint

	fields := []jen.Code{
		jen.Id("state").Op("*").Qual(runtimePkg, "BuilderState"),
	}
	if hasPending(art) {
		fields = append(fields, jen.Id("pending").Index().Qual(runtimePkg, "Pending"))
	}
	for _, oa := range art.Options {
		o := oa.Option
		if !o.Provider || o.Shape != option.Mapping {
			continue
		}
		key, err := goType(o.Key)
		if err != nil {
			return err
		}
		fields = append(fields, jen.Id(tokenField(o)).Map(key).Qual(runtimePkg, "Token"))
	}
	f.Commentf("%s assembles a %s.", t.BuilderName(), t.PrototypeName())
	f.Type().Id(t.BuilderName()).Struct(fields...)

	if err := g.genConstructor(f, art); err != nil {
		return err
	}
	for _, oa := range art.Options {
		if err := g.genAccessors(f, art, oa); err != nil {
			return err
		}
	}
	return g.genBuild(f, art)
}

// genConstructor emits New<Blueprint>Builder. Declared defaults and
// decorator-assigned defaults are seeded in assignment order; callers
// overwrite them through the setters.
func (g *Generator) genConstructor(f *jen.File, art *gen.Artifact) error {
	t := art.Blueprint
	ctor := "New" + t.BuilderName()
	body := []jen.Code{
		jen.Id("b").Op(":=").Op("&").Id(t.BuilderName()).Values(jen.Dict{
			jen.Id("state"): jen.Qual(runtimePkg, "NewBuilderState").Call(jen.Lit(t.Name)),
		}),
	}
	for _, name := range art.Defaults.Names() {
		o, ok := t.Option(name)
		if !ok {
			// Decorators may seed names outside the blueprint; those have
			// no field in the prototype and are dropped here.
			continue
		}
		v, _ := art.Defaults.Value(name)
		lit, err := defaultLit(o, v)
		if err != nil {
			return err
		}
		body = append(body, jen.Id("b").Dot("state").Dot("SetDefault").Call(jen.Lit(name), lit))
	}
	body = append(body, jen.Return(jen.Id("b")))
	f.Commentf("%s returns a builder with the blueprint's defaults applied.", ctor)
	f.Func().Id(ctor).Params().Op("*").Id(t.BuilderName()).Block(body...)
	return nil
}

// genAccessors emits the write methods of one option.
func (g *Generator) genAccessors(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact) error {
	o := oa.Option
	elem, err := goType(o.Elem)
	if err != nil {
		return fmt.Errorf("option %q: %w", o.Name, err)
	}
	for _, op := range oa.Accessors.Ops {
		if op.Kind == gen.OpGet {
			continue
		}
		if err := g.genAccessor(f, art, oa, op, elem); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) genAccessor(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact, op gen.Operation, elem jen.Code) error {
	var (
		t    = art.Blueprint
		o    = oa.Option
		recv = jen.Id("b").Op("*").Id(t.BuilderName())
		ret  = jen.Op("*").Id(t.BuilderName())
		name = jen.Lit(o.Name)
	)
	method := func(doc string, params []jen.Code, body ...jen.Code) {
		f.Comment(doc)
		f.Func().Params(recv).Id(op.Name).Params(params...).Add(ret).Block(
			append(body, jen.Return(jen.Id("b")))...)
	}
	loadTyped := func(ct jen.Code) []jen.Code {
		return []jen.Code{
			jen.List(jen.Id("cur"), jen.Id("_")).Op(":=").Id("b").Dot("state").Dot("Value").Call(name),
			jen.List(jen.Id("m"), jen.Id("_")).Op(":=").Id("cur").Assert(ct),
		}
	}
	switch op.Kind {
	case gen.OpSet:
		switch o.Shape {
		case option.Scalar:
			method(fmt.Sprintf("%s sets the %s option.", op.Name, o.Name),
				[]jen.Code{jen.Id("value").Add(elem)},
				jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Id("value")),
			)
		case option.Sequence:
			method(fmt.Sprintf("%s replaces the contents of %s.", op.Name, o.Name),
				[]jen.Code{jen.Id("values").Op("...").Add(elem)},
				jen.Id("b").Dot("state").Dot("Set").Call(name,
					jen.Append(jen.Index().Add(elem).Parens(jen.Nil()), jen.Id("values").Op("..."))),
			)
		case option.Set:
			method(fmt.Sprintf("%s replaces the contents of %s.", op.Name, o.Name),
				[]jen.Code{jen.Id("values").Op("...").Add(elem)},
				jen.Id("out").Op(":=").Make(jen.Map(elem).Struct(), jen.Len(jen.Id("values"))),
				jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id("values")).Block(
					jen.Id("out").Index(jen.Id("v")).Op("=").Struct().Values(),
				),
				jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Id("out")),
			)
		}
	case gen.OpAppend:
		switch o.Shape {
		case option.Sequence:
			method(fmt.Sprintf("%s appends elements to %s.", op.Name, o.Name),
				[]jen.Code{jen.Id("values").Op("...").Add(elem)},
				append(loadTyped(jen.Index().Add(elem)),
					jen.Id("b").Dot("state").Dot("Set").Call(name,
						jen.Append(jen.Id("m"), jen.Id("values").Op("..."))),
				)...,
			)
		case option.Set:
			method(fmt.Sprintf("%s inserts elements into %s. Duplicates are a no-op.", op.Name, o.Name),
				[]jen.Code{jen.Id("values").Op("...").Add(elem)},
				append(loadTyped(jen.Map(elem).Struct()),
					jen.Id("out").Op(":=").Make(jen.Map(elem).Struct(), jen.Len(jen.Id("m")).Op("+").Len(jen.Id("values"))),
					jen.For(jen.Id("v").Op(":=").Range().Id("m")).Block(
						jen.Id("out").Index(jen.Id("v")).Op("=").Struct().Values(),
					),
					jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id("values")).Block(
						jen.Id("out").Index(jen.Id("v")).Op("=").Struct().Values(),
					),
					jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Id("out")),
				)...,
			)
		}
	case gen.OpAdd:
		appendOp, _ := oa.Accessors.Op(gen.OpAppend)
		method(fmt.Sprintf("%s adds a single element to %s.", op.Name, o.Name),
			[]jen.Code{jen.Id("value").Add(elem)},
			jen.Id("b").Dot(appendOp.Name).Call(jen.Id("value")),
		)
		if op.Token {
			g.genTokenAdder(f, art, oa, op)
		}
	case gen.OpClear:
		ct, err := containerType(o)
		if err != nil {
			return err
		}
		method(fmt.Sprintf("%s removes all elements of %s.", op.Name, o.Name),
			nil,
			jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Add(ct).Parens(jen.Nil())),
		)
	case gen.OpPut:
		key, err := goType(o.Key)
		if err != nil {
			return err
		}
		method(fmt.Sprintf("%s assigns one %s pair.", op.Name, o.Name),
			[]jen.Code{jen.Id("key").Add(key), jen.Id("value").Add(elem)},
			append(loadTyped(jen.Map(key).Add(elem)),
				jen.Id("out").Op(":=").Make(jen.Map(key).Add(elem), jen.Len(jen.Id("m")).Op("+").Lit(1)),
				jen.Qual("maps", "Copy").Call(jen.Id("out"), jen.Id("m")),
				jen.Id("out").Index(jen.Id("key")).Op("=").Id("value"),
				jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Id("out")),
			)...,
		)
		if op.Token {
			if err := g.genTokenPut(f, art, oa, op); err != nil {
				return err
			}
		}
	case gen.OpPutAll:
		key, err := goType(o.Key)
		if err != nil {
			return err
		}
		method(fmt.Sprintf("%s assigns all pairs of the given mapping to %s.", op.Name, o.Name),
			[]jen.Code{jen.Id("values").Map(key).Add(elem)},
			append(loadTyped(jen.Map(key).Add(elem)),
				jen.Id("out").Op(":=").Make(jen.Map(key).Add(elem), jen.Len(jen.Id("m")).Op("+").Len(jen.Id("values"))),
				jen.Qual("maps", "Copy").Call(jen.Id("out"), jen.Id("m")),
				jen.Qual("maps", "Copy").Call(jen.Id("out"), jen.Id("values")),
				jen.Id("b").Dot("state").Dot("Set").Call(name, jen.Id("out")),
			)...,
		)
	}
	if op.Token && op.Kind == gen.OpSet && o.Shape == option.Scalar {
		g.genTokenSetter(f, art, oa, op)
	}
	return nil
}

// genTokenSetter emits the token variant of a scalar setter. The value is
// resolved by the provider registry when the prototype is built.
func (g *Generator) genTokenSetter(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact, op gen.Operation) {
	t := art.Blueprint
	o := oa.Option
	f.Commentf("%sToken defers the %s option to a provider token, resolved at build time.", op.Name, o.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(t.BuilderName())).Id(op.Name+"Token").Params(
		jen.Id("token").Qual(runtimePkg, "Token"),
	).Op("*").Id(t.BuilderName()).Block(
		jen.Id("b").Dot("pending").Op("=").Append(jen.Id("b").Dot("pending"), jen.Qual(runtimePkg, "Pending").Values(jen.Dict{
			jen.Id("Option"): jen.Lit(o.Name),
			jen.Id("Token"):  jen.Id("token"),
		})),
		jen.Return(jen.Id("b")),
	)
}

// genTokenAdder emits the token variant of a singular adder.
func (g *Generator) genTokenAdder(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact, op gen.Operation) {
	t := art.Blueprint
	o := oa.Option
	f.Commentf("%sToken adds an element of %s through a provider token, resolved at build time.", op.Name, o.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(t.BuilderName())).Id(op.Name+"Token").Params(
		jen.Id("token").Qual(runtimePkg, "Token"),
	).Op("*").Id(t.BuilderName()).Block(
		jen.Id("b").Dot("pending").Op("=").Append(jen.Id("b").Dot("pending"), jen.Qual(runtimePkg, "Pending").Values(jen.Dict{
			jen.Id("Option"): jen.Lit(o.Name),
			jen.Id("Token"):  jen.Id("token"),
		})),
		jen.Return(jen.Id("b")),
	)
}

// genTokenPut emits the token variant of a mapping put.
func (g *Generator) genTokenPut(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact, op gen.Operation) error {
	t := art.Blueprint
	o := oa.Option
	key, err := goType(o.Key)
	if err != nil {
		return err
	}
	field := tokenField(o)
	f.Commentf("%sToken assigns one %s pair through a provider token, resolved at build time.", op.Name, o.Name)
	f.Func().Params(jen.Id("b").Op("*").Id(t.BuilderName())).Id(op.Name+"Token").Params(
		jen.Id("key").Add(key),
		jen.Id("token").Qual(runtimePkg, "Token"),
	).Op("*").Id(t.BuilderName()).Block(
		jen.If(jen.Id("b").Dot(field).Op("==").Nil()).Block(
			jen.Id("b").Dot(field).Op("=").Make(jen.Map(key).Qual(runtimePkg, "Token")),
		),
		jen.Id("b").Dot(field).Index(jen.Id("key")).Op("=").Id("token"),
		jen.Return(jen.Id("b")),
	)
	return nil
}

// hasPending reports whether the builder needs a pending-token slice:
// any provider-driven option that is not a mapping.
func hasPending(art *gen.Artifact) bool {
	for _, oa := range art.Options {
		if oa.Option.Provider && oa.Option.Shape != option.Mapping {
			return true
		}
	}
	return false
}

// tokenField is the builder field holding the unresolved tokens of a
// provider-driven mapping option.
func tokenField(o *gen.Option) string {
	return o.BuilderField() + "Tokens"
}
