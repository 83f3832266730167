package stencil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderState_SetDefault(t *testing.T) {
	require := require.New(t)
	state := NewBuilderState("ServerConfig")

	require.True(state.SetDefault("lines", []string{"hello"}))
	v, ok := state.Value("lines")
	require.True(ok)
	require.Equal([]string{"hello"}, v)
	require.False(state.Explicit("lines"))

	// A second default never overwrites the first.
	require.False(state.SetDefault("lines", []string{"bye"}))
	v, _ = state.Value("lines")
	require.Equal([]string{"hello"}, v)
}

func TestBuilderState_ExplicitWins(t *testing.T) {
	require := require.New(t)
	state := NewBuilderState("ServerConfig")

	state.Set("host", "localhost")
	require.True(state.Explicit("host"))
	require.False(state.SetDefault("host", "0.0.0.0"))

	v, ok := state.Value("host")
	require.True(ok)
	require.Equal("localhost", v)
}

func TestBuilderState_Names(t *testing.T) {
	state := NewBuilderState("ServerConfig")
	state.Set("host", "localhost")
	state.SetDefault("port", 8080)
	state.Set("host", "remote") // re-assignment keeps the original position
	require.Equal(t, []string{"host", "port"}, state.Names())
}

func TestDecoratorRegistry_Apply(t *testing.T) {
	require := require.New(t)
	reg := NewDecoratorRegistry()

	var order []string
	require.NoError(reg.Register("defaults", DecorateFunc(func(s *BuilderState) error {
		order = append(order, "defaults")
		s.SetDefault("lines", []string{"generated"})
		return nil
	})))
	require.NoError(reg.Register("audit", DecorateFunc(func(s *BuilderState) error {
		order = append(order, "audit")
		return nil
	})))

	state := NewBuilderState("ServerConfig")
	state.Set("host", "localhost")
	require.NoError(reg.Apply([]string{"defaults", "audit"}, state))
	require.Equal([]string{"defaults", "audit"}, order, "decorators run in declaration order")

	v, ok := state.Value("lines")
	require.True(ok)
	require.Equal([]string{"generated"}, v)
	require.Equal("localhost", mustValue(t, state, "host"), "explicit value untouched")
}

func TestDecoratorRegistry_UnknownRef(t *testing.T) {
	require := require.New(t)
	reg := NewDecoratorRegistry()
	state := NewBuilderState("ServerConfig")

	err := reg.Apply([]string{"missing"}, state)
	require.Error(err)
	require.True(IsUnknownDecorator(err))
	require.ErrorIs(err, ErrUnknownDecorator)

	// A nil registry still accepts an empty reference list.
	var nilReg *DecoratorRegistry
	require.NoError(nilReg.Apply(nil, state))
	require.Error(nilReg.Apply([]string{"missing"}, state))
}

func TestDecoratorRegistry_Register(t *testing.T) {
	require := require.New(t)
	reg := NewDecoratorRegistry()
	noop := DecorateFunc(func(*BuilderState) error { return nil })

	require.NoError(reg.Register("noop", noop))
	err := reg.Register("noop", noop)
	require.ErrorIs(err, ErrRegistration)
	require.EqualError(err, `stencil: cannot register decorator "noop": already registered`)
	require.Error(reg.Register("nil", nil))
}

func TestDecoratorRegistry_DecorateError(t *testing.T) {
	require := require.New(t)
	reg := NewDecoratorRegistry()
	boom := errors.New("boom")
	require.NoError(reg.Register("failing", DecorateFunc(func(*BuilderState) error {
		return boom
	})))

	err := reg.Apply([]string{"failing"}, NewBuilderState("ServerConfig"))
	require.Error(err)
	require.ErrorIs(err, boom)
	var derr *DecorateError
	require.ErrorAs(err, &derr)
	require.Equal("failing", derr.Ref)
	require.Equal("ServerConfig", derr.Blueprint)
}

func TestProviderRegistry_Resolve(t *testing.T) {
	require := require.New(t)
	reg := NewProviderRegistry()
	require.NoError(reg.Register("env", ProvideFunc(func(key string) (any, error) {
		if key == "HOME" {
			return "/home/app", nil
		}
		return nil, errors.New("no such key")
	})))

	v, err := reg.Resolve(Token("env:HOME"))
	require.NoError(err)
	require.Equal("/home/app", v)

	_, err = reg.Resolve(Token("env:MISSING"))
	require.True(IsTokenError(err))

	_, err = reg.Resolve(Token("vault:secret"))
	require.ErrorIs(err, ErrBadToken)

	_, err = reg.Resolve(Token("malformed"))
	require.ErrorIs(err, ErrBadToken)
}

func TestToken_Split(t *testing.T) {
	tests := []struct {
		token    Token
		provider string
		key      string
		ok       bool
	}{
		{"env:HOME", "env", "HOME", true},
		{"vault:app/secret:latest", "vault", "app/secret:latest", true},
		{"nokey:", "nokey", "", true},
		{":orphan", "", "", false},
		{"bare", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		provider, key, ok := tt.token.Split()
		require.Equal(t, tt.ok, ok, "token %q", tt.token)
		require.Equal(t, tt.provider, provider, "token %q", tt.token)
		require.Equal(t, tt.key, key, "token %q", tt.token)
	}
}

func mustValue(t *testing.T, s *BuilderState, name string) any {
	t.Helper()
	v, ok := s.Value(name)
	require.True(t, ok, "missing value for %q", name)
	return v
}
