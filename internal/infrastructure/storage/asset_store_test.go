package storage

import (
	"encoding/base64"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*AssetStore, afero.Fs) {
	t.Helper()
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/srv/public/storage/images", 0o755))
	return NewAssetStore(memFs, "/srv/public/storage", zap.NewNop()), memFs
}

func TestAssetStore_ImageDataURI(t *testing.T) {
	store, memFs := newTestStore(t)
	content := []byte("\x89PNG\r\n\x1a\nfake")
	require.NoError(t, afero.WriteFile(memFs, "/srv/public/storage/images/logo.png", content, 0o644))

	got := store.ImageDataURI("images/logo.png")

	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(content), got)
}

func TestAssetStore_LeadingSlashAndBackslash(t *testing.T) {
	store, memFs := newTestStore(t)
	require.NoError(t, afero.WriteFile(memFs, "/srv/public/storage/images/stamp.png", []byte("x"), 0o644))

	assert.NotEmpty(t, store.ImageDataURI("/images/stamp.png"))
	assert.NotEmpty(t, store.ImageDataURI(`images\stamp.png`))
}

func TestAssetStore_MissingFileYieldsEmptyString(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, "", store.ImageDataURI("images/does-not-exist.png"))
	assert.Equal(t, "", store.ImageDataURI(""))
	assert.Equal(t, "", store.ImageDataURI("   "))
}

func TestAssetStore_DirectoryIsNotAnAsset(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.Exists("images"))
	assert.Equal(t, "", store.ImageDataURI("images"))
}

func TestAssetStore_CannotEscapeRoot(t *testing.T) {
	store, memFs := newTestStore(t)
	require.NoError(t, afero.WriteFile(memFs, "/srv/secret.png", []byte("secret"), 0o644))

	assert.Equal(t, "", store.ImageDataURI("../../secret.png"))
}
