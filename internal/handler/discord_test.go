package handler

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jrslyce/equip-detail/internal/discord"
	"github.com/jrslyce/equip-detail/internal/domain"
)

func TestHandleTokenExchange(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockDiscordClient)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"code":"abc","redirect_uri":"https://game.example/callback"}`,
			setupMock: func(d *MockDiscordClient) {
				d.On("ExchangeCode", mock.Anything, "abc", "https://game.example/callback").
					Return(&discord.TokenResponse{AccessToken: "tok", TokenType: "Bearer"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"access_token":"tok"`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{bad`,
			setupMock:      func(d *MockDiscordClient) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request body",
		},
		{
			name:        "Missing Credentials",
			requestBody: `{"code":"abc","redirect_uri":"https://game.example/callback"}`,
			setupMock: func(d *MockDiscordClient) {
				d.On("ExchangeCode", mock.Anything, "abc", "https://game.example/callback").
					Return(nil, domain.ErrDiscordConfig)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgDiscordConfigError,
		},
		{
			name:        "Upstream Rejection",
			requestBody: `{"code":"stale","redirect_uri":"https://game.example/callback"}`,
			setupMock: func(d *MockDiscordClient) {
				d.On("ExchangeCode", mock.Anything, "stale", "https://game.example/callback").
					Return(nil, domain.ErrDiscordUpstream)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgDiscordUpstreamError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockDiscordClient{}
			tt.setupMock(mockClient)
			handler := HandleTokenExchange(mockClient)

			req := httptest.NewRequest("POST", "/discord/token", bytes.NewBufferString(tt.requestBody))
			w := httptest.NewRecorder()
			handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestHandleInteractionsUnsigned(t *testing.T) {
	handler := HandleInteractions("")

	req := httptest.NewRequest("POST", "/interactions", bytes.NewBufferString(`{"type":1}`))
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":1}`, w.Body.String())
}

func TestHandleInteractionsAcksNonPing(t *testing.T) {
	handler := HandleInteractions("")

	req := httptest.NewRequest("POST", "/interactions", bytes.NewBufferString(`{"type":2}`))
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":4`)
	assert.Contains(t, w.Body.String(), "interaction received")
}

func TestHandleInteractionsSigned(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	body := []byte(`{"type":1}`)
	ts := "1700000000"
	sig := ed25519.Sign(priv, append([]byte(ts), body...))

	handler := HandleInteractions(hex.EncodeToString(pub))

	t.Run("Valid Signature", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/interactions", bytes.NewBuffer(body))
		req.Header.Set(discord.HeaderSignature, hex.EncodeToString(sig))
		req.Header.Set(discord.HeaderTimestamp, ts)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"type":1}`, w.Body.String())
	})

	t.Run("Tampered Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/interactions", bytes.NewBufferString(`{"type":2}`))
		req.Header.Set(discord.HeaderSignature, hex.EncodeToString(sig))
		req.Header.Set(discord.HeaderTimestamp, ts)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Signature", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/interactions", bytes.NewBuffer(body))
		req.Header.Set(discord.HeaderSignature, "not-hex")
		req.Header.Set(discord.HeaderTimestamp, ts)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleVerify(t *testing.T) {
	req := httptest.NewRequest("GET", "/verify", nil)
	w := httptest.NewRecorder()
	HandleVerify()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
