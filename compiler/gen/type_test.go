package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgen/stencil/blueprint/option"
	"github.com/stencilgen/stencil/compiler/load"
)

func stringType() *option.TypeInfo { return &option.TypeInfo{Type: option.TypeString} }

func TestNewBlueprint(t *testing.T) {
	bp, err := NewBlueprint(nil, &load.Blueprint{
		Name: "ServerConfig",
		Options: []*load.Option{
			{Name: "host", Shape: option.Scalar, Elem: stringType(), Default: "localhost"},
			{Name: "lines", Shape: option.Sequence, Elem: stringType()},
			{Name: "headers", Shape: option.Mapping, Key: stringType(), Elem: stringType()},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "ServerConfig", bp.Name)
	require.Equal(t, "server_config", bp.Label())
	require.Equal(t, "ServerConfig", bp.PrototypeName())
	require.Equal(t, "ServerConfigBuilder", bp.BuilderName())
	require.Len(t, bp.Options, 3)

	lines, ok := bp.Option("lines")
	require.True(t, ok)
	require.NotNil(t, lines.SingularForm())
	require.Equal(t, "line", lines.SingularForm().Name)
	require.Equal(t, []string{"Lines", "SetLines", "AddLines", "AddLine", "ClearLines"}, lines.Accessors().Names())

	host, _ := bp.Option("host")
	require.Nil(t, host.SingularForm())
	require.Equal(t, "Host", host.StructField())
	require.Equal(t, "host", host.BuilderField())

	_, ok = bp.Option("missing")
	require.False(t, ok)
}

func TestNewBlueprintInvalid(t *testing.T) {
	tests := []struct {
		name     string
		bp       *load.Blueprint
		wantErr  string
		sentinel error
	}{
		{
			name:    "empty blueprint name",
			bp:      &load.Blueprint{},
			wantErr: "load: blueprint name cannot be empty",
		},
		{
			name: "blueprint name not an identifier",
			bp: &load.Blueprint{
				Name: "Server Config",
			},
			wantErr:  `stencil: invalid name "Server Config": not a valid identifier`,
			sentinel: ErrInvalidName,
		},
		{
			name: "option name not an identifier",
			bp: &load.Blueprint{
				Name: "ServerConfig",
				Options: []*load.Option{
					{Name: "my-option", Shape: option.Scalar, Elem: stringType()},
				},
			},
			wantErr:  `stencil: invalid name "my-option" in blueprint ServerConfig: not a valid identifier`,
			sentinel: ErrInvalidName,
		},
		{
			name: "duplicate option",
			bp: &load.Blueprint{
				Name: "ServerConfig",
				Options: []*load.Option{
					{Name: "host", Shape: option.Scalar, Elem: stringType()},
					{Name: "host", Shape: option.Scalar, Elem: stringType()},
				},
			},
			wantErr:  `stencil: option "host" redeclared in blueprint "ServerConfig"`,
			sentinel: ErrDuplicateOption,
		},
		{
			name: "singular override on scalar",
			bp: &load.Blueprint{
				Name: "ServerConfig",
				Options: []*load.Option{
					{Name: "host", Shape: option.Scalar, Elem: stringType(), Singular: "host"},
				},
			},
			wantErr:  `stencil: scalar option "host" of blueprint ServerConfig: singular overrides apply to sequence and set options only`,
			sentinel: ErrNotCollection,
		},
		{
			name: "singular collides with option name",
			bp: &load.Blueprint{
				Name: "ServerConfig",
				Options: []*load.Option{
					{Name: "lines", Shape: option.Sequence, Elem: stringType()},
					{Name: "line", Shape: option.Scalar, Elem: stringType()},
				},
			},
			wantErr:  `stencil: singular form "line" of option "lines" collides with option "line" in blueprint "ServerConfig"`,
			sentinel: ErrAmbiguousSingular,
		},
		{
			name: "singular adder collides with generated method",
			bp: &load.Blueprint{
				Name: "ServerConfig",
				Options: []*load.Option{
					{Name: "entries", Shape: option.Sequence, Elem: stringType(), SingularMethod: "SetTitle"},
					{Name: "title", Shape: option.Scalar, Elem: stringType()},
				},
			},
			wantErr:  `stencil: singular form "SetTitle" of option "entries" collides with method "SetTitle" of option "title" in blueprint "ServerConfig"`,
			sentinel: ErrAmbiguousSingular,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBlueprint(nil, tt.bp)
			require.EqualError(t, err, tt.wantErr)
			if tt.sentinel != nil {
				require.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

// Option names are case-sensitive: "Value" and "value" coexist.
func TestNewBlueprintCaseSensitiveNames(t *testing.T) {
	_, err := NewBlueprint(nil, &load.Blueprint{
		Name: "Pair",
		Options: []*load.Option{
			{Name: "value", Shape: option.Scalar, Elem: stringType()},
			{Name: "values", Shape: option.Sequence, Elem: stringType(), Singular: "extra"},
		},
	})
	require.NoError(t, err)
}

// An uncountable option name singularizes to itself; the singular adder
// collapses into the append adder instead of shadowing it.
func TestNewBlueprintUncountable(t *testing.T) {
	bp, err := NewBlueprint(nil, &load.Blueprint{
		Name: "Payload",
		Options: []*load.Option{
			{Name: "data", Shape: option.Sequence, Elem: stringType()},
		},
	})
	require.NoError(t, err)
	data, _ := bp.Option("data")
	require.Equal(t, "data", data.SingularForm().Name)
	require.Equal(t, []string{"Data", "SetData", "AddData", "ClearData"}, data.Accessors().Names())
	require.False(t, data.Accessors().Has(OpAdd))
}
