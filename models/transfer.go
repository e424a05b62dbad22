package models

import "time"

// SecureFileUpload is returned once per upload. This is the only time the
// 4-digit password is ever revealed; the caller is expected to save or share
// it out of band.
type SecureFileUpload struct {
	FileID     string    `json:"fileId"`
	FileName   string    `json:"fileName"`
	Password   string    `json:"password"`
	ExpiryTime time.Time `json:"expiryTime"`
}

// SecureFileDownload carries the decrypted file back to the caller.
type SecureFileDownload struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"content"`
}
