// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(crypto.NewCipherService(), 24*time.Hour, logger.Nop())
}

func TestStore_UploadDownload_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	content := []byte("confidential report contents")

	upload, err := store.Upload(ctx, content, "report.pdf")
	require.NoError(t, err)

	assert.Len(t, upload.Password, 4)
	assert.NotEmpty(t, upload.FileID)
	assert.Equal(t, "report.pdf", upload.FileName)

	download, err := store.Download(ctx, upload.FileID, upload.Password)
	require.NoError(t, err)

	assert.Equal(t, content, download.Content)
	assert.Equal(t, "report.pdf", download.FileName)
}

func TestStore_Download_WrongPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	upload, err := store.Upload(ctx, []byte("data"), "file.bin")
	require.NoError(t, err)

	wrong := "0000"
	if upload.Password == wrong {
		wrong = "0001"
	}

	_, err = store.Download(ctx, upload.FileID, wrong)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStore_Download_UnknownFileID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Download(context.Background(), "deadbeef", "1234")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStore_Download_ExpiredRecordIsEvicted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	upload, err := store.Upload(ctx, []byte("data"), "file.bin")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	// jump the clock past the expiry
	store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	_, err = store.Download(ctx, upload.FileID, upload.Password)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, 0, store.Len(), "expired record must be evicted on lookup")

	// even the right password cannot resurrect it
	store.now = time.Now
	_, err = store.Download(ctx, upload.FileID, upload.Password)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStore_PasswordIsFourDigits(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 20; i++ {
		upload, err := store.Upload(context.Background(), []byte("x"), "f")
		require.NoError(t, err)
		require.Len(t, upload.Password, 4)
		assert.GreaterOrEqual(t, upload.Password, "1000")
		assert.LessOrEqual(t, upload.Password, "9999")
	}
}

func TestStore_DistinctFileIDsForSameName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Upload(ctx, []byte("a"), "same.txt")
	require.NoError(t, err)
	second, err := store.Upload(ctx, []byte("b"), "same.txt")
	require.NoError(t, err)

	assert.NotEqual(t, first.FileID, second.FileID)
}
