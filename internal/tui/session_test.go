package tui

import (
	"context"
	"testing"

	"github.com/dudhatpatel/cyberdefender/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssistant records the last call so tests can assert command routing.
type fakeAssistant struct {
	lastCall string

	classifyResult models.ClassifyResult
	password       string
	strength       models.PasswordStrength
	phishing       models.PhishingCheck
	upiValid       bool
}

func (f *fakeAssistant) Chat(_ context.Context, _ string) (models.ClassifyResult, error) {
	f.lastCall = "chat"
	return f.classifyResult, nil
}

func (f *fakeAssistant) CheckPassword(_ context.Context, _ string) (models.PasswordStrength, error) {
	f.lastCall = "check"
	return f.strength, nil
}

func (f *fakeAssistant) GeneratePassword(_ context.Context, _ models.PasswordOptions) (string, error) {
	f.lastCall = "generate"
	return f.password, nil
}

func (f *fakeAssistant) Hash(_ context.Context, _, _ string) (string, error) {
	f.lastCall = "hash"
	return "digest", nil
}

func (f *fakeAssistant) Encrypt(_ context.Context, _, _ string) (string, error) { return "", nil }
func (f *fakeAssistant) Decrypt(_ context.Context, _, _ string) (string, error) { return "", nil }
func (f *fakeAssistant) Encode(_ context.Context, _, _ string) (string, error)  { return "", nil }
func (f *fakeAssistant) Decode(_ context.Context, _, _ string) (string, error)  { return "", nil }

func (f *fakeAssistant) CheckLink(_ context.Context, _ string) (models.PhishingCheck, error) {
	f.lastCall = "link"
	return f.phishing, nil
}

func (f *fakeAssistant) CheckUPI(_ context.Context, _ string) (bool, error) {
	f.lastCall = "upi"
	return f.upiValid, nil
}

func (f *fakeAssistant) IPInfo(_ context.Context, _ string) (models.IPInfo, error) {
	f.lastCall = "ip"
	return models.IPInfo{}, nil
}

func (f *fakeAssistant) AnalyzeDomain(_ context.Context, _ string) (models.DomainSecurityResult, error) {
	f.lastCall = "domain"
	return models.DomainSecurityResult{}, nil
}

func (f *fakeAssistant) UploadFile(_ context.Context, _ string, _ []byte) (models.SecureFileUpload, error) {
	return models.SecureFileUpload{}, nil
}

func (f *fakeAssistant) DownloadFile(_ context.Context, _, _ string) (models.SecureFileDownload, error) {
	return models.SecureFileDownload{}, nil
}

func (f *fakeAssistant) Laws(_ context.Context) ([]models.LawReference, error) {
	f.lastCall = "laws"
	return []models.LawReference{{Name: "IT Act"}}, nil
}

func (f *fakeAssistant) Frauds(_ context.Context) ([]models.FraudPattern, error) {
	return nil, nil
}

func TestConverse_PlainTextGoesThroughChat(t *testing.T) {
	fake := &fakeAssistant{classifyResult: models.ClassifyResult{Response: "canned"}}

	reply, password, err := converse(context.Background(), fake, "is this a scam?")
	require.NoError(t, err)

	assert.Equal(t, "chat", fake.lastCall)
	assert.Equal(t, "canned", reply)
	assert.Empty(t, password)
}

func TestConverse_GeneratorToolCompletesInline(t *testing.T) {
	fake := &fakeAssistant{
		classifyResult: models.ClassifyResult{Response: "here you go:", Tool: models.ToolPasswordGenerator},
		password:       "aB3$xY7!",
	}

	reply, password, err := converse(context.Background(), fake, "generate a password")
	require.NoError(t, err)

	assert.Equal(t, "generate", fake.lastCall)
	assert.Contains(t, reply, "aB3$xY7!")
	assert.Equal(t, "aB3$xY7!", password)
}

func TestConverse_SlashCommands(t *testing.T) {
	tests := []struct {
		input    string
		wantCall string
	}{
		{input: "/check hunter2", wantCall: "check"},
		{input: "/generate 20", wantCall: "generate"},
		{input: "/hash sha256 hello", wantCall: "hash"},
		{input: "/link http://example.xyz", wantCall: "link"},
		{input: "/upi name@bank", wantCall: "upi"},
		{input: "/ip 8.8.8.8", wantCall: "ip"},
		{input: "/domain example.com", wantCall: "domain"},
		{input: "/laws", wantCall: "laws"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fake := &fakeAssistant{}

			_, _, err := converse(context.Background(), fake, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCall, fake.lastCall)
		})
	}
}

func TestConverse_UnknownCommand(t *testing.T) {
	fake := &fakeAssistant{}

	reply, _, err := converse(context.Background(), fake, "/frobnicate")
	require.NoError(t, err)

	assert.Empty(t, fake.lastCall)
	assert.Contains(t, reply, "Unknown command")
}
