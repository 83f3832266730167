package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/gen"
)

// genBuild emits the Build method: pending provider tokens are resolved
// against the given registry, then the typed prototype is assembled from
// the builder state.
func (g *Generator) genBuild(f *jen.File, art *gen.Artifact) error {
	t := art.Blueprint
	var body []jen.Code

	if hasPending(art) {
		cases, err := pendingCases(art)
		if err != nil {
			return err
		}
		body = append(body,
			jen.For(jen.List(jen.Id("_"), jen.Id("pd")).Op(":=").Range().Id("b").Dot("pending")).Block(
				jen.List(jen.Id("v"), jen.Err()).Op(":=").Id("providers").Dot("Resolve").Call(jen.Id("pd").Dot("Token")),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Nil(), jen.Err()),
				),
				jen.Switch(jen.Id("pd").Dot("Option")).Block(cases...),
			),
		)
	}

	for _, oa := range art.Options {
		o := oa.Option
		if !o.Provider || o.Shape != option.Mapping {
			continue
		}
		elem, err := goType(o.Elem)
		if err != nil {
			return err
		}
		put, ok := oa.Accessors.Op(gen.OpPut)
		if !ok {
			return fmt.Errorf("option %q has no put accessor", o.Name)
		}
		body = append(body,
			jen.For(jen.List(jen.Id("k"), jen.Id("token")).Op(":=").Range().Id("b").Dot(tokenField(o))).Block(
				jen.List(jen.Id("v"), jen.Err()).Op(":=").Id("providers").Dot("Resolve").Call(jen.Id("token")),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Nil(), jen.Err()),
				),
				jen.List(jen.Id("tv"), jen.Id("ok")).Op(":=").Id("v").Assert(elem),
				jen.If(jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
						jen.Lit("stencil: token %q for option %q of %q resolved to %T"),
						jen.Id("token"), jen.Lit(o.Name), jen.Lit(t.Name), jen.Id("v"),
					)),
				),
				jen.Id("b").Dot(put.Name).Call(jen.Id("k"), jen.Id("tv")),
			),
		)
	}

	body = append(body, jen.Id("p").Op(":=").Op("&").Id(t.PrototypeName()).Values())
	for _, oa := range art.Options {
		o := oa.Option
		ct, err := containerType(o)
		if err != nil {
			return err
		}
		body = append(body,
			jen.If(
				jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("b").Dot("state").Dot("Value").Call(jen.Lit(o.Name)),
				jen.Id("ok"),
			).Block(
				jen.List(jen.Id("tv"), jen.Id("ok")).Op(":=").Id("v").Assert(ct),
				jen.If(jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
						jen.Lit("stencil: option %q of %q holds %T"),
						jen.Lit(o.Name), jen.Lit(t.Name), jen.Id("v"),
					)),
				),
				jen.Id("p").Dot(o.BuilderField()).Op("=").Id("tv"),
			),
		)
	}
	body = append(body, jen.Return(jen.Id("p"), jen.Nil()))

	f.Commentf("Build assembles the %s. Provider tokens accepted by the builder are resolved against the given registry first.", t.PrototypeName())
	f.Func().Params(jen.Id("b").Op("*").Id(t.BuilderName())).Id("Build").Params(
		jen.Id("providers").Op("*").Qual(runtimePkg, "ProviderRegistry"),
	).Params(jen.Op("*").Id(t.PrototypeName()), jen.Error()).Block(body...)
	return nil
}

// pendingCases builds the per-option switch applying a resolved token
// value: scalars go through the setter, sequences and sets through the
// append adder.
func pendingCases(art *gen.Artifact) ([]jen.Code, error) {
	t := art.Blueprint
	var cases []jen.Code
	for _, oa := range art.Options {
		o := oa.Option
		if !o.Provider || o.Shape == option.Mapping {
			continue
		}
		elem, err := goType(o.Elem)
		if err != nil {
			return nil, err
		}
		var apply *jen.Statement
		switch o.Shape {
		case option.Scalar:
			set, _ := oa.Accessors.Op(gen.OpSet)
			apply = jen.Id("b").Dot(set.Name).Call(jen.Id("tv"))
		default:
			ap, _ := oa.Accessors.Op(gen.OpAppend)
			apply = jen.Id("b").Dot(ap.Name).Call(jen.Id("tv"))
		}
		cases = append(cases, jen.Case(jen.Lit(o.Name)).Block(
			jen.List(jen.Id("tv"), jen.Id("ok")).Op(":=").Id("v").Assert(elem),
			jen.If(jen.Op("!").Id("ok")).Block(
				jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
					jen.Lit("stencil: token %q for option %q of %q resolved to %T"),
					jen.Id("pd").Dot("Token"), jen.Lit(o.Name), jen.Lit(t.Name), jen.Id("v"),
				)),
			),
			apply,
		))
	}
	return cases, nil
}
