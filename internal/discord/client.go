package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jrslyce/equip-detail/internal/domain"
	"github.com/jrslyce/equip-detail/internal/logger"
)

const (
	// TokenEndpoint is Discord's OAuth2 token exchange URL.
	TokenEndpoint = "https://discord.com/api/oauth2/token"

	defaultHTTPTimeout = 10 * time.Second
)

// TokenResponse is the payload Discord returns from a successful
// authorization-code exchange. It is passed through to the caller
// unmodified.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
}

// Identity is the subset of a Discord user the profile service needs.
type Identity struct {
	ID       string
	Username string
	Avatar   *string
}

// Client exchanges OAuth codes and resolves bearer-token identities.
type Client interface {
	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)

	// ResolveIdentity returns the Discord user behind a bearer token.
	ResolveIdentity(ctx context.Context, accessToken string) (*Identity, error)
}

type client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokenURL     string
}

// NewClient creates a Discord client. clientID and clientSecret may be
// empty; ExchangeCode then fails with domain.ErrDiscordConfig.
func NewClient(clientID, clientSecret string) Client {
	return &client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		tokenURL:     TokenEndpoint,
	}
}

func (c *client) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	if c.clientID == "" || c.clientSecret == "" {
		return nil, domain.ErrDiscordConfig
	}
	if code == "" || redirectURI == "" {
		return nil, fmt.Errorf("%w: code and redirect_uri are required", domain.ErrInvalidInput)
	}

	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscordUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrDiscordUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn("Discord token exchange rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrDiscordUpstream, resp.StatusCode, string(body))
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrDiscordUpstream, err)
	}

	return &token, nil
}

// ResolveIdentity fetches the authenticated user via discordgo using
// the player's bearer token.
func (c *client) ResolveIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	if accessToken == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscordUpstream, err)
	}
	session.Client = c.httpClient

	user, err := session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Response != nil &&
			restErr.Response.StatusCode == http.StatusUnauthorized {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscordUpstream, err)
	}

	identity := &Identity{
		ID:       user.ID,
		Username: user.Username,
	}
	if user.Avatar != "" {
		avatar := user.Avatar
		identity.Avatar = &avatar
	}
	return identity, nil
}
