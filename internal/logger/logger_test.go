// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	// must not panic and must not write anywhere
	log.Info().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "test").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("hello")

	require.Contains(t, buf.String(), `"role":"test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := base.WithContext(context.Background())

	log := FromContext(ctx)
	log.Info().Msg("traced")

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	log := FromRequest(r)
	log.Info().Msg("from request")

	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)
}
