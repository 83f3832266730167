package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgen/stencil/blueprint/option"
)

func TestResolveSingular(t *testing.T) {
	tests := []struct {
		name     string
		opt      *Option
		form     SingularForm
		wantErr  string
		sentinel error
	}{
		{
			name: "derived",
			opt:  &Option{Name: "lines", Shape: option.Sequence},
			form: SingularForm{Name: "line", Method: "AddLine"},
		},
		{
			name: "derived multi-word",
			opt:  &Option{Name: "allowed_origins", Shape: option.Set},
			form: SingularForm{Name: "allowed_origin", Method: "AddAllowedOrigin"},
		},
		{
			name: "uncountable stays put",
			opt:  &Option{Name: "data", Shape: option.Sequence},
			form: SingularForm{Name: "data", Method: "AddData"},
		},
		{
			name: "single-character name stays put",
			opt:  &Option{Name: "s", Shape: option.Sequence},
			form: SingularForm{Name: "s", Method: "AddS"},
		},
		{
			name: "name override",
			opt:  &Option{Name: "entries", Shape: option.Sequence, Singular: "record"},
			form: SingularForm{Name: "record", Method: "AddRecord"},
		},
		{
			name: "override beats heuristic",
			opt:  &Option{Name: "data", Shape: option.Sequence, Singular: "datum"},
			form: SingularForm{Name: "datum", Method: "AddDatum"},
		},
		{
			name: "override identical to derived is accepted",
			opt:  &Option{Name: "properties", Shape: option.Set, Singular: "property"},
			form: SingularForm{Name: "property", Method: "AddProperty"},
		},
		{
			name: "method override",
			opt:  &Option{Name: "lines", Shape: option.Sequence, SingularMethod: "AppendLine"},
			form: SingularForm{Name: "line", Method: "AppendLine"},
		},
		{
			name: "both overrides",
			opt:  &Option{Name: "entries", Shape: option.Sequence, Singular: "record", SingularMethod: "Push"},
			form: SingularForm{Name: "record", Method: "Push"},
		},
		{
			name:     "scalar has no singular",
			opt:      &Option{Name: "host", Shape: option.Scalar},
			wantErr:  `stencil: scalar option "host": singular form applies to sequence and set options only`,
			sentinel: ErrNotCollection,
		},
		{
			name:     "mapping has no singular",
			opt:      &Option{Name: "headers", Shape: option.Mapping},
			wantErr:  `stencil: mapping option "headers": singular form applies to sequence and set options only`,
			sentinel: ErrNotCollection,
		},
		{
			name:     "invalid override",
			opt:      &Option{Name: "lines", Shape: option.Sequence, Singular: "1line"},
			wantErr:  `stencil: invalid name "1line": not a valid identifier`,
			sentinel: ErrInvalidName,
		},
		{
			name:     "invalid method override",
			opt:      &Option{Name: "lines", Shape: option.Sequence, SingularMethod: "add line"},
			wantErr:  `stencil: invalid name "add line": not a valid identifier`,
			sentinel: ErrInvalidName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := ResolveSingular(tt.opt)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.ErrorIs(t, err, tt.sentinel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.form, form)
		})
	}
}

func TestResolveSingularDeterministic(t *testing.T) {
	o := &Option{Name: "properties", Shape: option.Sequence}
	first, err := ResolveSingular(o)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ResolveSingular(o)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.Equal(t, SingularForm{Name: "property", Method: "AddProperty"}, first)
}
