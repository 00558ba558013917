package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrslyce/equip-detail/internal/domain"
)

func newTestClient(tokenURL string) *client {
	return &client{
		clientID:     "client-id",
		clientSecret: "client-secret",
		httpClient:   http.DefaultClient,
		tokenURL:     tokenURL,
	}
}

func TestExchangeCodeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://game.example/redirect", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":604800,"scope":"identify"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	token, err := c.ExchangeCode(context.Background(), "the-code", "https://game.example/redirect")
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 604800, token.ExpiresIn)
}

func TestExchangeCodeUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.ExchangeCode(context.Background(), "bad-code", "https://game.example/redirect")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiscordUpstream)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestExchangeCodeMissingConfig(t *testing.T) {
	c := NewClient("", "")

	_, err := c.ExchangeCode(context.Background(), "code", "uri")
	assert.ErrorIs(t, err, domain.ErrDiscordConfig)
}

func TestExchangeCodeMissingFields(t *testing.T) {
	c := NewClient("id", "secret")

	_, err := c.ExchangeCode(context.Background(), "", "uri")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.ExchangeCode(context.Background(), "code", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveIdentityMissingToken(t *testing.T) {
	c := NewClient("id", "secret")

	_, err := c.ResolveIdentity(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
