// SPDX-License-Identifier: Apache-2.0

// Package transfer implements the in-memory secure file transfer store:
// encrypt-on-upload, decrypt-on-verified-download, 24-hour expiry with lazy
// eviction. Nothing is persisted; a process restart drops all records.
package transfer

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/dudhatpatel/cyberdefender/internal/crypto"
	"github.com/dudhatpatel/cyberdefender/internal/logger"
	"github.com/dudhatpatel/cyberdefender/models"
)

// record is one stored file. The payload is kept only in encrypted form;
// the password doubles as the encryption passphrase.
type record struct {
	fileID     string
	fileName   string
	ciphertext string
	password   string
	expiry     time.Time
}

// Store is a mutex-guarded in-memory file store. Uploads and downloads may
// arrive concurrently from HTTP handlers, so every access to the record map
// goes through the mutex.
type Store struct {
	cipher crypto.CipherService
	ttl    time.Duration
	now    func() time.Time

	logger *logger.Logger

	mu      sync.Mutex
	records map[string]record
}

// NewStore constructs a [Store]. Uploaded files expire ttl after creation;
// expired records are evicted lazily on the next lookup, there is no
// background sweep.
func NewStore(cipher crypto.CipherService, ttl time.Duration, logger *logger.Logger) *Store {
	return &Store{
		cipher:  cipher,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		records: make(map[string]record),
	}
}

// Upload encrypts content under a freshly generated 4-digit password and
// stores the result. The returned password is revealed exactly once, here;
// it is never recoverable from the store afterwards. The file ID is derived
// from the file name and the upload timestamp.
//
// Size limits are the caller's responsibility; the store accepts whatever
// it is handed.
func (s *Store) Upload(ctx context.Context, content []byte, fileName string) (models.SecureFileUpload, error) {
	password, err := generatePassword()
	if err != nil {
		return models.SecureFileUpload{}, fmt.Errorf("generate password: %w", err)
	}

	ciphertext, err := s.cipher.EncryptBytes(content, password)
	if err != nil {
		return models.SecureFileUpload{}, fmt.Errorf("encrypt file: %w", err)
	}

	uploadedAt := s.now()
	sum := md5.Sum([]byte(fileName + strconv.FormatInt(uploadedAt.UnixNano(), 10)))
	fileID := hex.EncodeToString(sum[:])

	rec := record{
		fileID:     fileID,
		fileName:   fileName,
		ciphertext: ciphertext,
		password:   password,
		expiry:     uploadedAt.Add(s.ttl),
	}

	s.mu.Lock()
	s.records[fileID] = rec
	s.mu.Unlock()

	s.logger.Info().
		Str("file_id", fileID).
		Str("file_name", fileName).
		Time("expiry", rec.expiry).
		Msg("secure file stored")

	return models.SecureFileUpload{
		FileID:     fileID,
		FileName:   fileName,
		Password:   password,
		ExpiryTime: rec.expiry,
	}, nil
}

// Download looks up fileID, verifies the password, and returns the decrypted
// content. Every failure path returns [ErrFileNotFound]; see the error's
// documentation for why the cases are indistinguishable. An expired record
// is evicted before the not-found answer is returned.
func (s *Store) Download(ctx context.Context, fileID string, password string) (models.SecureFileDownload, error) {
	s.mu.Lock()
	rec, ok := s.records[fileID]
	if ok && s.now().After(rec.expiry) {
		delete(s.records, fileID)
		ok = false
	}
	s.mu.Unlock()

	if !ok || rec.password != password {
		return models.SecureFileDownload{}, ErrFileNotFound
	}

	content, err := s.cipher.DecryptBytes(rec.ciphertext, password)
	if err != nil {
		// Should not happen once the password matched; still keep the
		// opaque answer.
		s.logger.Err(err).Str("file_id", fileID).Msg("stored file failed to decrypt")
		return models.SecureFileDownload{}, ErrFileNotFound
	}

	return models.SecureFileDownload{
		FileName: rec.fileName,
		Content:  content,
	}, nil
}

// Len reports the number of records currently held, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// generatePassword draws a uniform 4-digit numeric password in [1000, 9999]
// from the OS CSPRNG.
func generatePassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}
