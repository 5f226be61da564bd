package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"contactbook/internal/contacts/models"
	"contactbook/internal/contacts/store"
	"contactbook/pkg/platform/sentinel"
)

const snapshotVersion = 1

// snapshotFile is the on-disk envelope.
type snapshotFile struct {
	Version  int              `json:"version" yaml:"version"`
	Contacts []store.Document `json:"contacts" yaml:"contacts"`
}

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var (
	jsonCodec = codec{
		marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
		unmarshal: json.Unmarshal,
	}
	yamlCodec = codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
)

// Store keeps the book in a single file. Paths ending in .yaml or .yml are
// written as YAML, everything else as JSON.
type Store struct {
	path  string
	codec codec
}

var _ store.Snapshot = (*Store)(nil)

func New(path string) *Store {
	c := jsonCodec
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c = yamlCodec
	}
	return &Store{path: path, codec: c}
}

func (s *Store) Load(_ context.Context) (*models.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var snap snapshotFile
	if err := s.codec.unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w: %v", s.path, sentinel.ErrCorrupt, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("decode snapshot %s: %w: unsupported version %d", s.path, sentinel.ErrCorrupt, snap.Version)
	}
	book, err := store.FromDocuments(snap.Contacts)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", s.path, err)
	}
	return book, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the snapshot, so a failed write never truncates the previous state.
func (s *Store) Save(_ context.Context, book *models.AddressBook) error {
	data, err := s.codec.marshal(snapshotFile{
		Version:  snapshotVersion,
		Contacts: store.ToDocuments(book),
	})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", s.path, err)
	}
	return nil
}
