package storage

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// pngDataURIPrefix is used for every asset regardless of its real format;
// printed templates have always embedded branding images this way.
const pngDataURIPrefix = "data:image/png;base64,"

// AssetStore reads branding images (logo, signature, stamp) from the public
// storage root. Paths are relative to that root and cannot escape it.
type AssetStore struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewAssetStore creates an asset store rooted at root on the given filesystem.
func NewAssetStore(base afero.Fs, root string, logger *zap.Logger) *AssetStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetStore{
		fs:     afero.NewBasePathFs(base, root),
		logger: logger,
	}
}

// NewOSAssetStore creates an asset store on the local disk.
func NewOSAssetStore(root string, logger *zap.Logger) *AssetStore {
	return NewAssetStore(afero.NewOsFs(), root, logger)
}

// Exists reports whether path names a regular file under the storage root.
func (s *AssetStore) Exists(path string) bool {
	info, err := s.fs.Stat(normalize(path))
	return err == nil && !info.IsDir()
}

// ImageDataURI returns the image at path as an inline data URI. A missing or
// unreadable file yields an empty string.
func (s *AssetStore) ImageDataURI(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}

	name := normalize(path)
	if !s.Exists(name) {
		s.logger.Debug("branding asset not found", zap.String("path", path))
		return ""
	}

	data, err := afero.ReadFile(s.fs, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read branding asset", zap.String("path", path), zap.Error(err))
		}
		return ""
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

func normalize(path string) string {
	return "/" + strings.TrimLeft(strings.ReplaceAll(path, "\\", "/"), "/")
}
