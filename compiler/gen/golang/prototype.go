package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/gen"
)

// genPrototype emits the immutable value type of a blueprint: an
// unexported field per option and a getter per option that never exposes
// internal containers.
func (g *Generator) genPrototype(f *jen.File, art *gen.Artifact) error {
	t := art.Blueprint
	if t.Comment != "" {
		f.Comment(t.Comment)
	} else {
		f.Commentf("%s is the immutable value built by %s.", t.PrototypeName(), t.BuilderName())
	}
	fields := make([]jen.Code, 0, len(art.Options))
	for _, oa := range art.Options {
		ct, err := containerType(oa.Option)
		if err != nil {
			return err
		}
		fields = append(fields, jen.Id(oa.Option.BuilderField()).Add(ct))
	}
	f.Type().Id(t.PrototypeName()).Struct(fields...)

	if art.Placement == gen.Nested {
		f.Commentf("BlueprintName returns the name of the blueprint %s was generated from.", t.PrototypeName())
		f.Func().Params(jen.Id("p").Op("*").Id(t.PrototypeName())).Id("BlueprintName").Params().String().Block(
			jen.Return(jen.Lit(t.Name)),
		)
	}

	for _, oa := range art.Options {
		if err := g.genGetter(f, art, oa); err != nil {
			return err
		}
	}
	return nil
}

// genGetter emits the read accessor of one option. Sequence, set and
// mapping getters copy, so callers cannot mutate the prototype through
// the returned container.
func (g *Generator) genGetter(f *jen.File, art *gen.Artifact, oa gen.OptionArtifact) error {
	var (
		t     = art.Blueprint
		o     = oa.Option
		field = o.BuilderField()
		recv  = jen.Id("p").Op("*").Id(t.PrototypeName())
	)
	get, ok := oa.Accessors.Op(gen.OpGet)
	if !ok {
		return fmt.Errorf("option %q has no getter", o.Name)
	}
	elem, err := goType(o.Elem)
	if err != nil {
		return err
	}
	if o.Comment != "" {
		f.Commentf("%s returns %s", get.Name, o.Comment)
	} else {
		f.Commentf("%s returns the %s option.", get.Name, o.Name)
	}
	switch o.Shape {
	case option.Scalar:
		f.Func().Params(recv).Id(get.Name).Params().Add(elem).Block(
			jen.Return(jen.Id("p").Dot(field)),
		)
	case option.Sequence:
		f.Func().Params(recv).Id(get.Name).Params().Index().Add(elem).Block(
			jen.Return(jen.Append(jen.Index().Add(elem).Parens(jen.Nil()), jen.Id("p").Dot(field).Op("..."))),
		)
	case option.Set:
		f.Func().Params(recv).Id(get.Name).Params().Index().Add(elem).Block(
			jen.Id("out").Op(":=").Make(jen.Index().Add(elem), jen.Lit(0), jen.Len(jen.Id("p").Dot(field))),
			jen.For(jen.Id("v").Op(":=").Range().Id("p").Dot(field)).Block(
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("v")),
			),
			jen.Return(jen.Id("out")),
		)
	case option.Mapping:
		key, err := goType(o.Key)
		if err != nil {
			return err
		}
		f.Func().Params(recv).Id(get.Name).Params().Map(key).Add(elem).Block(
			jen.Return(jen.Qual("maps", "Clone").Call(jen.Id("p").Dot(field))),
		)
	default:
		return fmt.Errorf("option %q: unsupported shape %q", o.Name, o.Shape)
	}
	return nil
}
