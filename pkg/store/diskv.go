package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv keeps the blob as a single file in a diskv directory.
type Diskv struct {
	d        *diskv.Diskv
	key      string
	basePath string
}

var _ Adapter = (*Diskv)(nil)

// Load opens the diskv-backed adapter described by cfg, reading the
// configuration from viper when cfg is nil.
func Load(cfg Config) (*Diskv, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	key := strings.TrimSpace(cfg.Key())
	if key == "" {
		key = DefaultKey
	}
	if strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("store: invalid key %q", key)
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), key: key, basePath: basePath}, nil
}

func (p *Diskv) Load() (string, bool, error) {
	if !p.d.Has(p.key) {
		return "", false, nil
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	return string(val), true, nil
}

func (p *Diskv) Save(blob string) error {
	if err := p.d.Write(p.key, []byte(blob)); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

// Path is the file holding the blob.
func (p *Diskv) Path() string {
	return filepath.Join(p.basePath, p.key)
}

// Keys are flat: every key is a file directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
