package gen

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is the wire version of the snapshot encoding. Readers
// reject snapshots of a different version instead of guessing.
const SnapshotVersion = 1

// Snapshot records the naming decisions of one processed batch: every
// blueprint with its resolved singular forms and generated method names.
// Comparing a stored snapshot against a fresh run detects accessor drift,
// for example when a heuristic change would silently rename a method in
// generated code that callers already depend on.
type Snapshot struct {
	Version    int                 `msgpack:"version" json:"version"`
	BuildID    string              `msgpack:"build_id" json:"build_id"`
	Time       time.Time           `msgpack:"time" json:"time"`
	Blueprints []SnapshotBlueprint `msgpack:"blueprints" json:"blueprints"`
}

// SnapshotBlueprint is the snapshot record of one blueprint.
type SnapshotBlueprint struct {
	Name      string           `msgpack:"name" json:"name"`
	Placement string           `msgpack:"placement" json:"placement"`
	Options   []SnapshotOption `msgpack:"options" json:"options"`
}

// SnapshotOption is the snapshot record of one option: its resolved
// singular form, if any, and the generated method names in emission order.
type SnapshotOption struct {
	Name     string   `msgpack:"name" json:"name"`
	Shape    string   `msgpack:"shape" json:"shape"`
	Singular string   `msgpack:"singular,omitempty" json:"singular,omitempty"`
	Methods  []string `msgpack:"methods" json:"methods"`
}

// NewSnapshot captures the naming decisions of the batch's successful
// artifacts.
func NewSnapshot(batch *Batch) *Snapshot {
	s := &Snapshot{
		Version: SnapshotVersion,
		BuildID: uuid.NewString(),
		Time:    time.Now().UTC(),
	}
	for _, art := range batch.Artifacts {
		sb := SnapshotBlueprint{
			Name:      art.Blueprint.Name,
			Placement: art.Placement.String(),
		}
		for _, oa := range art.Options {
			so := SnapshotOption{
				Name:    oa.Option.Name,
				Shape:   oa.Option.Shape.String(),
				Methods: oa.Accessors.Names(),
			}
			if oa.Singular != nil {
				so.Singular = oa.Singular.Name
			}
			sb.Options = append(sb.Options, so)
		}
		s.Blueprints = append(s.Blueprints, sb)
	}
	return s
}

// WriteSnapshot encodes the snapshot to w.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	return msgpack.NewEncoder(w).Encode(s)
}

// ReadSnapshot decodes a snapshot from r and verifies its version.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("stencil: decoding snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("stencil: unsupported snapshot version %d (want %d)", s.Version, SnapshotVersion)
	}
	return &s, nil
}

// SaveSnapshot writes the snapshot to the named file.
func SaveSnapshot(path string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSnapshot reads a snapshot from the named file.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// Diff compares two snapshots and returns a description of every renamed
// or removed generated method, keyed by blueprint name. An empty result
// means the new snapshot is accessor-compatible with the old one.
func (s *Snapshot) Diff(next *Snapshot) map[string][]string {
	prev := make(map[string]map[string]SnapshotOption)
	for _, bp := range s.Blueprints {
		opts := make(map[string]SnapshotOption, len(bp.Options))
		for _, o := range bp.Options {
			opts[o.Name] = o
		}
		prev[bp.Name] = opts
	}
	drift := make(map[string][]string)
	for _, bp := range next.Blueprints {
		opts, ok := prev[bp.Name]
		if !ok {
			continue
		}
		for _, o := range bp.Options {
			old, ok := opts[o.Name]
			if !ok {
				continue
			}
			was := make(map[string]bool, len(o.Methods))
			for _, m := range o.Methods {
				was[m] = true
			}
			for _, m := range old.Methods {
				if !was[m] {
					drift[bp.Name] = append(drift[bp.Name],
						fmt.Sprintf("option %q: method %q no longer generated", o.Name, m))
				}
			}
		}
	}
	if len(drift) == 0 {
		return nil
	}
	return drift
}
