package gen

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilgen/stencil/compiler/load"
)

func TestSnapshotRoundTrip(t *testing.T) {
	batch, err := Process(context.Background(), nil, []*load.Blueprint{serverConfig()})
	require.NoError(t, err)
	require.True(t, batch.OK())

	s := NewSnapshot(batch)
	require.Equal(t, SnapshotVersion, s.Version)
	require.NotEmpty(t, s.BuildID)
	require.Len(t, s.Blueprints, 1)
	require.Equal(t, "ServerConfig", s.Blueprints[0].Name)
	require.Equal(t, "nested", s.Blueprints[0].Placement)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, s))
	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Equal(t, s.BuildID, got.BuildID)
	require.Equal(t, s.Blueprints, got.Blueprints)
}

func TestSnapshotVersionCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, &Snapshot{Version: 99}))
	_, err := ReadSnapshot(&buf)
	require.EqualError(t, err, "stencil: unsupported snapshot version 99 (want 1)")
}

func TestSnapshotFile(t *testing.T) {
	batch, err := Process(context.Background(), nil, []*load.Blueprint{serverConfig()})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stencil.snap")
	s := NewSnapshot(batch)
	require.NoError(t, SaveSnapshot(path, s))
	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, s.Blueprints, got.Blueprints)
}

func TestSnapshotDiff(t *testing.T) {
	batch, err := Process(context.Background(), nil, []*load.Blueprint{serverConfig()})
	require.NoError(t, err)
	old := NewSnapshot(batch)

	// Identical run: no drift.
	require.Nil(t, old.Diff(NewSnapshot(batch)))

	// Renaming the singular adder drops a method callers depend on.
	def := serverConfig()
	def.Options[1].Singular = "row"
	changed, err := Process(context.Background(), nil, []*load.Blueprint{def})
	require.NoError(t, err)
	drift := old.Diff(NewSnapshot(changed))
	require.Len(t, drift, 1)
	require.Equal(t,
		[]string{`option "lines": method "AddLine" no longer generated`},
		drift["ServerConfig"])
}
