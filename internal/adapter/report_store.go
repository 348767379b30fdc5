package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "binres.dev/pkg/binres/internal/model"
)

// ManifestStore persists the inventory of an embedding run.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore stores manifests as YAML documents.
type YAMLManifestStore struct {
	fs SourceFSAdapter
}

// NewManifestStore returns a YAML backed ManifestStore writing through fs.
func NewManifestStore(fs SourceFSAdapter) *YAMLManifestStore {
	return &YAMLManifestStore{fs: fs}
}

// SaveManifest encodes manifest and atomically replaces the file at path.
func (s *YAMLManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	pending, err := s.fs.CreatePending(path)
	if err != nil {
		return fmt.Errorf("create manifest %s: %w", path, err)
	}

	if _, err := pending.Write(buf.Bytes()); err != nil {
		return errors.Join(fmt.Errorf("write manifest %s: %w", path, err), pending.Abort())
	}

	return pending.Commit()
}

// LoadManifest decodes the manifest stored at path.
func (s *YAMLManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	if manifest.Version > m.ManifestVersion {
		return m.Manifest{}, fmt.Errorf("manifest %s: unsupported version %d", path, manifest.Version)
	}

	return manifest, nil
}

var _ ManifestStore = (*YAMLManifestStore)(nil)

// IsNotExist reports whether err was caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
