package option

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuilders(t *testing.T) {
	require := require.New(t)

	d := String("host").Default("localhost").Comment("listen host").Descriptor()
	require.Equal("host", d.Name)
	require.Equal(Scalar, d.Shape)
	require.Equal(TypeString, d.Elem.Type)
	require.Equal("localhost", d.Default)
	require.Nil(d.Key)

	d = Strings("lines").Descriptor()
	require.Equal(Sequence, d.Shape)
	require.Equal(TypeString, d.Elem.Type)

	d = SetOf("tags", TypeString).Singular("tag").Descriptor()
	require.Equal(Set, d.Shape)
	require.Equal("tag", d.Singular)

	d = MapOf("headers", TypeString, TypeString).Descriptor()
	require.Equal(Mapping, d.Shape)
	require.Equal(TypeString, d.Key.Type)
	require.Equal(TypeString, d.Elem.Type)

	d = Strings("certificates").Provider().Descriptor()
	require.True(d.Provider)

	d = Custom("amount", "decimal.Decimal", "github.com/shopspring/decimal").Descriptor()
	require.True(d.Elem.Custom())
	require.Equal("decimal.Decimal", d.Elem.String())
}

func TestShape_Collection(t *testing.T) {
	require.False(t, Scalar.Collection())
	require.True(t, Sequence.Collection())
	require.True(t, Set.Collection())
	require.False(t, Mapping.Collection())
	require.False(t, Invalid.Collection())
}

func TestShape_Text(t *testing.T) {
	for _, s := range []Shape{Scalar, Sequence, Set, Mapping} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var back Shape
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, s, back)
	}
	var s Shape
	require.Error(t, s.UnmarshalText([]byte("tuple")))
	_, err := Invalid.MarshalText()
	require.Error(t, err)
}

func TestDescriptor_YAML(t *testing.T) {
	require := require.New(t)
	src := `
name: headers
shape: mapping
key: {type: string}
elem: {type: string}
`
	var d Descriptor
	require.NoError(yaml.Unmarshal([]byte(src), &d))
	require.Equal("headers", d.Name)
	require.Equal(Mapping, d.Shape)
	require.Equal(TypeString, d.Key.Type)

	var bad Descriptor
	require.Error(yaml.Unmarshal([]byte("name: x\nshape: tuple\n"), &bad))
}

func TestDescriptor_JSON(t *testing.T) {
	require := require.New(t)
	d := SliceOf("ports", TypeInt).Singular("port").Descriptor()
	buf, err := json.Marshal(d)
	require.NoError(err)
	require.JSONEq(`{"name":"ports","shape":"sequence","elem":{"type":"int"},"singular":"port"}`, string(buf))

	var back Descriptor
	require.NoError(json.Unmarshal(buf, &back))
	require.Equal(*d, back)
}
