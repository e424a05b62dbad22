package models

// Request and response bodies of the HTTP API.

type ChatRequest struct {
	Message string `json:"message"`
}

type PasswordCheckRequest struct {
	Password string `json:"password"`
}

type PasswordGenerateResponse struct {
	Password string `json:"password"`
}

type HashRequest struct {
	Text      string `json:"text"`
	Algorithm string `json:"algorithm"`
}

type HashResponse struct {
	Digest string `json:"digest"`
}

type EncryptRequest struct {
	Text       string `json:"text"`
	Passphrase string `json:"passphrase"`
}

type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Passphrase string `json:"passphrase"`
}

type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

type EncodeRequest struct {
	Text   string `json:"text"`
	Scheme string `json:"scheme"`
}

type EncodeResponse struct {
	Result string `json:"result"`
}

type LinkCheckRequest struct {
	URL string `json:"url"`
}

type UPICheckRequest struct {
	UPIID string `json:"upiId"`
}

type UPICheckResponse struct {
	Valid bool `json:"valid"`
}

type DomainAnalyzeRequest struct {
	Domain string `json:"domain"`
}

type TransferDownloadRequest struct {
	FileID   string `json:"fileId"`
	Password string `json:"password"`
}

// ErrorResponse is the uniform error body of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
