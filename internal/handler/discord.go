package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jrslyce/equip-detail/internal/discord"
	"github.com/jrslyce/equip-detail/internal/logger"
	"github.com/jrslyce/equip-detail/internal/metrics"
)

// TokenExchangeRequest represents an OAuth authorization-code exchange.
type TokenExchangeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// HandleTokenExchange trades a Discord authorization code for tokens.
// The upstream response is passed through unmodified on success.
// @Summary Exchange OAuth code for tokens
// @Tags discord
// @Accept json
// @Produce json
// @Success 200 {object} discord.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/discord/token [post]
func HandleTokenExchange(discordClient discord.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TokenExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode token request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := discordClient.ExchangeCode(r.Context(), req.Code, req.RedirectURI)
		if err != nil {
			metrics.TokenExchanges.WithLabelValues("failure").Inc()
			log.Warn("Token exchange failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		metrics.TokenExchanges.WithLabelValues("success").Inc()
		respondJSON(w, http.StatusOK, token)
	}
}

// interactionRequest is the minimal interaction payload shape we need.
type interactionRequest struct {
	Type int `json:"type"`
}

// interactionResponse is a Discord interaction callback.
type interactionResponse struct {
	Type int                     `json:"type"`
	Data *interactionCallbackMsg `json:"data,omitempty"`
}

type interactionCallbackMsg struct {
	Content string `json:"content"`
}

// HandleInteractions answers Discord interaction webhooks. Signed
// requests are verified against the configured application public key;
// unsigned requests are allowed through for local development.
func HandleInteractions(publicKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read interaction body", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sig := r.Header.Get(discord.HeaderSignature)
		ts := r.Header.Get(discord.HeaderTimestamp)
		if sig != "" && ts != "" {
			ok, err := discord.VerifySignature(publicKey, sig, ts, body)
			if err != nil || !ok {
				log.Warn("Interaction signature rejected", "error", err)
				respondError(w, http.StatusUnauthorized, "Invalid request signature")
				return
			}
		}

		var payload interactionRequest
		if len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				log.Warn("Failed to decode interaction payload", "error", err)
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
		}

		if payload.Type == discord.InteractionTypePing {
			respondJSON(w, http.StatusOK, interactionResponse{Type: discord.InteractionCallbackPong})
			return
		}

		respondJSON(w, http.StatusOK, interactionResponse{
			Type: discord.InteractionCallbackChannelReply,
			Data: &interactionCallbackMsg{Content: "interaction received"},
		})
	}
}

// HandleVerify is the linked-roles verification stub.
func HandleVerify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// HandleRoot returns a service banner for the API root.
func HandleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "equip-detail backend"})
	}
}
