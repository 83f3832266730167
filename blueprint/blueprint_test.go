package blueprint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgen/stencil/blueprint/option"
)

func TestDescriptor(t *testing.T) {
	require := require.New(t)
	bp := New("ServerConfig",
		option.String("host").Default("localhost"),
		option.Strings("lines"),
	).
		Options(option.MapOf("headers", option.TypeString, option.TypeString)).
		Decorate("server-defaults", "audit").
		Comment("Server configuration.")

	d := bp.Descriptor()
	require.Equal("ServerConfig", d.Name)
	require.False(d.Detach)
	require.Equal([]string{"server-defaults", "audit"}, d.Decorators)
	require.Equal("Server configuration.", d.Comment)
	require.NoError(d.Validate())

	names := make([]string, 0, len(d.Options))
	for _, o := range d.Options {
		names = append(names, o.Name)
	}
	require.Equal([]string{"host", "lines", "headers"}, names, "declaration order preserved")
}

func TestDescriptor_Detach(t *testing.T) {
	d := New("TlsConfig").Detach().Descriptor()
	require.True(t, d.Detach)
}
