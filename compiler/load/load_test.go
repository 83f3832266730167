package load

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgen/stencil/blueprint/option"
)

const descriptors = `
name: ServerConfig
options:
  - name: host
    shape: scalar
    elem: {type: string}
    default: localhost
  - name: lines
    shape: sequence
    elem: {type: string}
  - name: headers
    shape: mapping
    key: {type: string}
    elem: {type: string}
---
name: TlsConfig
detach: true
decorators: [tls-defaults]
options:
  - name: certificates
    shape: sequence
    elem: {type: string}
    provider: true
`

func TestParseYAML(t *testing.T) {
	require := require.New(t)
	bps, err := ParseYAML(strings.NewReader(descriptors))
	require.NoError(err)
	require.Len(bps, 2)

	server := bps[0]
	require.Equal("ServerConfig", server.Name)
	require.False(server.Detach)
	require.Len(server.Options, 3)
	require.Equal(option.Scalar, server.Options[0].Shape)
	require.Equal("localhost", server.Options[0].Default)
	require.Equal(option.Sequence, server.Options[1].Shape)
	require.Equal(option.Mapping, server.Options[2].Shape)
	require.Equal(option.TypeString, server.Options[2].Key.Type)

	tls := bps[1]
	require.True(tls.Detach)
	require.Equal([]string{"tls-defaults"}, tls.Decorators)
	require.True(tls.Options[0].Provider)
}

func TestParseYAML_Invalid(t *testing.T) {
	for _, tt := range []struct {
		doc  string
		want string
	}{
		{"options:\n  - name: x\n    shape: scalar\n    elem: {type: string}\n", "blueprint name cannot be empty"},
		{"name: C\noptions:\n  - name: \"\"\n    shape: scalar\n    elem: {type: string}\n", "option name cannot be empty"},
		{"name: C\noptions:\n  - name: x\n    elem: {type: string}\n", "has no shape"},
		{"name: C\noptions:\n  - name: x\n    shape: scalar\n", "has no element type"},
		{"name: C\noptions:\n  - name: m\n    shape: mapping\n    elem: {type: string}\n", "has no key type"},
		{"name: C\noptions:\n  - name: x\n    shape: sequence\n    elem: {type: string}\n    key: {type: string}\n", "cannot have a key type"},
	} {
		_, err := ParseYAML(strings.NewReader(tt.doc))
		require.ErrorContains(t, err, tt.want, "doc: %s", tt.doc)
	}
}

func TestParseJSON(t *testing.T) {
	require := require.New(t)
	bps, err := ParseJSON([]byte(`[{"name":"A","options":[{"name":"tags","shape":"set","elem":{"type":"string"}}]}]`))
	require.NoError(err)
	require.Len(bps, 1)
	require.Equal(option.Set, bps[0].Options[0].Shape)

	bps, err = ParseJSON([]byte(`{"name":"B","detach":true}`))
	require.NoError(err)
	require.True(bps[0].Detach)
}

func TestParseFile(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprints.yaml")
	require.NoError(os.WriteFile(path, []byte(descriptors), 0o644))

	bps, err := ParseFile(path)
	require.NoError(err)
	require.Len(bps, 2)

	bad := filepath.Join(dir, "blueprints.toml")
	require.NoError(os.WriteFile(bad, []byte("x"), 0o644))
	_, err = ParseFile(bad)
	require.ErrorContains(err, "unsupported descriptor format")
}

func TestParseDir(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("name: Second\n"), 0o644))
	require.NoError(os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"name":"First"}`), 0o644))
	require.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	bps, err := ParseDir(dir)
	require.NoError(err)
	require.Len(bps, 2)
	require.Equal("First", bps[0].Name, "lexical file order")
	require.Equal("Second", bps[1].Name)
}

func TestMarshalBlueprint(t *testing.T) {
	require := require.New(t)
	bp := &Blueprint{
		Name: "ServerConfig",
		Options: []*Option{
			NewOption(option.Strings("lines").Descriptor()),
		},
	}
	buf, err := MarshalBlueprint(bp)
	require.NoError(err)

	back, err := ParseJSON(buf)
	require.NoError(err)
	require.Equal(bp.Name, back[0].Name)
	require.Equal(bp.Options[0].Shape, back[0].Options[0].Shape)
}
