package persist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/schema"
)

// Snapshot captures a workspace's dock layout and theme for persistence.
type Snapshot struct {
	Theme schema.ThemeName    `json:"theme,omitempty"`
	Dock  schema.DockSnapshot `json:"dock"`
}

// Store persists workspace snapshots to disk. Writes are atomic: the
// snapshot lands in a temp file that is synced and renamed into place.
type Store struct {
	dir string
	log pslog.Logger
}

// NewStore constructs a persistent store at the given directory.
func NewStore(dir string) (*Store, error) {
	return NewStoreWithLogger(dir, nil)
}

// NewStoreWithLogger constructs a persistent store with logging.
func NewStoreWithLogger(dir string, logger pslog.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	if logger != nil {
		logger = logger.With("state_dir", dir)
	}
	return &Store{dir: dir, log: logger}, nil
}

// Load reads a workspace snapshot from disk. A missing file is not an
// error; the second return value reports whether a snapshot existed.
func (s *Store) Load(workspace string) (Snapshot, bool, error) {
	path := s.pathForWorkspace(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.log != nil {
				s.log.Debug("layout load miss", "workspace", workspace)
			}
			return Snapshot{}, false, nil
		}
		if s.log != nil {
			s.log.Warn("layout load failed", "workspace", workspace, "err", err)
		}
		return Snapshot{}, false, err
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		if s.log != nil {
			s.log.Warn("layout load failed", "workspace", workspace, "err", err)
		}
		return Snapshot{}, false, err
	}
	if s.log != nil {
		s.log.Debug("layout load ok", "workspace", workspace, "nodes", len(snapshot.Dock.Nodes))
	}
	return snapshot, true, nil
}

// Save writes a workspace snapshot to disk.
func (s *Store) Save(workspace string, snapshot Snapshot) error {
	path := s.pathForWorkspace(workspace)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "layout-*.json")
	if err != nil {
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		if s.log != nil {
			s.log.Warn("layout save failed", "workspace", workspace, "err", err)
		}
		return err
	}
	if s.log != nil {
		s.log.Trace("layout save ok", "workspace", workspace, "nodes", len(snapshot.Dock.Nodes))
	}
	return nil
}

func (s *Store) pathForWorkspace(workspace string) string {
	name := sanitize(workspace)
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.dir, name+".json")
}

func sanitize(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		if r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	return b.String()
}
