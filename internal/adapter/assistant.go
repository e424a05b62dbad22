// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dudhatpatel/cyberdefender/models"
	"github.com/go-resty/resty/v2"
)

// AssistantConfig configures the REST client of the assistant server.
type AssistantConfig struct {
	BaseURL string
	Timeout time.Duration
}

type assistantClient struct {
	client *resty.Client
}

// NewAssistantClient builds an [AssistantClient] for the assistant REST API.
func NewAssistantClient(cfg AssistantConfig) AssistantClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &assistantClient{client: cli}
}

func (a *assistantClient) Chat(ctx context.Context, message string) (models.ClassifyResult, error) {
	var out models.ClassifyResult
	err := a.postJSON(ctx, "/api/chat", models.ChatRequest{Message: message}, &out)
	return out, err
}

func (a *assistantClient) CheckPassword(ctx context.Context, password string) (models.PasswordStrength, error) {
	var out models.PasswordStrength
	err := a.postJSON(ctx, "/api/password/check", models.PasswordCheckRequest{Password: password}, &out)
	return out, err
}

func (a *assistantClient) GeneratePassword(ctx context.Context, opts models.PasswordOptions) (string, error) {
	var out models.PasswordGenerateResponse
	if err := a.postJSON(ctx, "/api/password/generate", opts, &out); err != nil {
		return "", err
	}
	return out.Password, nil
}

func (a *assistantClient) Hash(ctx context.Context, text, algorithm string) (string, error) {
	var out models.HashResponse
	if err := a.postJSON(ctx, "/api/hash", models.HashRequest{Text: text, Algorithm: algorithm}, &out); err != nil {
		return "", err
	}
	return out.Digest, nil
}

func (a *assistantClient) Encrypt(ctx context.Context, text, passphrase string) (string, error) {
	var out models.EncryptResponse
	if err := a.postJSON(ctx, "/api/encrypt", models.EncryptRequest{Text: text, Passphrase: passphrase}, &out); err != nil {
		return "", err
	}
	return out.Ciphertext, nil
}

func (a *assistantClient) Decrypt(ctx context.Context, ciphertext, passphrase string) (string, error) {
	var out models.DecryptResponse
	if err := a.postJSON(ctx, "/api/decrypt", models.DecryptRequest{Ciphertext: ciphertext, Passphrase: passphrase}, &out); err != nil {
		return "", err
	}
	return out.Plaintext, nil
}

func (a *assistantClient) Encode(ctx context.Context, text, scheme string) (string, error) {
	var out models.EncodeResponse
	if err := a.postJSON(ctx, "/api/encode", models.EncodeRequest{Text: text, Scheme: scheme}, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func (a *assistantClient) Decode(ctx context.Context, text, scheme string) (string, error) {
	var out models.EncodeResponse
	if err := a.postJSON(ctx, "/api/decode", models.EncodeRequest{Text: text, Scheme: scheme}, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func (a *assistantClient) CheckLink(ctx context.Context, url string) (models.PhishingCheck, error) {
	var out models.PhishingCheck
	err := a.postJSON(ctx, "/api/fraud/link", models.LinkCheckRequest{URL: url}, &out)
	return out, err
}

func (a *assistantClient) CheckUPI(ctx context.Context, upiID string) (bool, error) {
	var out models.UPICheckResponse
	if err := a.postJSON(ctx, "/api/fraud/upi", models.UPICheckRequest{UPIID: upiID}, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

func (a *assistantClient) IPInfo(ctx context.Context, ip string) (models.IPInfo, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("ip", ip).
		Get("/api/ip-info")
	if err != nil {
		return models.IPInfo{}, fmt.Errorf("ip-info request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.IPInfo{}, err
	}

	var out models.IPInfo
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.IPInfo{}, fmt.Errorf("decode ip-info response: %w", err)
	}
	return out, nil
}

func (a *assistantClient) AnalyzeDomain(ctx context.Context, domain string) (models.DomainSecurityResult, error) {
	var out models.DomainSecurityResult
	err := a.postJSON(ctx, "/api/domain/analyze", models.DomainAnalyzeRequest{Domain: domain}, &out)
	return out, err
}

func (a *assistantClient) UploadFile(ctx context.Context, fileName string, content []byte) (models.SecureFileUpload, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, strings.NewReader(string(content))).
		Post("/api/transfer/upload")
	if err != nil {
		return models.SecureFileUpload{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.SecureFileUpload{}, err
	}

	var out models.SecureFileUpload
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SecureFileUpload{}, fmt.Errorf("decode upload response: %w", err)
	}
	return out, nil
}

func (a *assistantClient) DownloadFile(ctx context.Context, fileID, password string) (models.SecureFileDownload, error) {
	var out models.SecureFileDownload
	err := a.postJSON(ctx, "/api/transfer/download", models.TransferDownloadRequest{FileID: fileID, Password: password}, &out)
	return out, err
}

func (a *assistantClient) Laws(ctx context.Context) ([]models.LawReference, error) {
	var out []models.LawReference
	err := a.getJSON(ctx, "/api/compliance/laws", &out)
	return out, err
}

func (a *assistantClient) Frauds(ctx context.Context) ([]models.FraudPattern, error) {
	var out []models.FraudPattern
	err := a.getJSON(ctx, "/api/compliance/frauds", &out)
	return out, err
}

func (a *assistantClient) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (a *assistantClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := a.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// mapAPIError turns a non-2xx response into an error carrying the server's
// error message when the body holds one.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
}
