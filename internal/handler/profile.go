package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jrslyce/equip-detail/internal/discord"
	"github.com/jrslyce/equip-detail/internal/domain"
	"github.com/jrslyce/equip-detail/internal/logger"
	"github.com/jrslyce/equip-detail/internal/profile"
)

// UpsertProfileRequest represents the request to create or refresh a profile.
type UpsertProfileRequest struct {
	DiscordUserID string  `json:"discord_user_id" validate:"required,max=64"`
	Username      string  `json:"username" validate:"required,max=128"`
	Avatar        *string `json:"avatar"`
}

// UpdateEquippedRequest carries either a single-slot update or a
// wholesale mapping replacement. Equipped wins when both are present.
type UpdateEquippedRequest struct {
	Slot     string                 `json:"slot,omitempty" validate:"omitempty,slot"`
	ItemID   *string                `json:"item_id,omitempty"`
	Equipped domain.EquippedMapping `json:"equipped,omitempty"`
}

// HandleUpsertProfile creates a seeded profile on first contact and
// refreshes identity fields afterwards.
// @Summary Create or refresh a profile
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile/upsert [post]
func HandleUpsertProfile(profileService profile.Service, discordClient discord.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpsertProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode upsert request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// A bearer token, when supplied, is authoritative over the body.
		if token := bearerToken(r); token != "" && discordClient != nil {
			identity, err := discordClient.ResolveIdentity(r.Context(), token)
			if err != nil {
				log.Warn("Failed to resolve Discord identity", "error", err)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			req.DiscordUserID = identity.ID
			req.Username = identity.Username
			req.Avatar = identity.Avatar
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid upsert request", "errors", FormatValidationError(err))
			respondError(w, http.StatusBadRequest, "discord_user_id and username are required")
			return
		}

		p, err := profileService.UpsertProfile(r.Context(), req.DiscordUserID, req.Username, req.Avatar)
		if err != nil {
			log.Error("Failed to upsert profile", "error", err, "discord_user_id", req.DiscordUserID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Profile upserted", "discord_user_id", p.DiscordUserID)
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetProfile returns the profile for a Discord user id.
// @Summary Get a profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{discord_user_id} [get]
func HandleGetProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "discord_user_id")

		p, err := profileService.GetProfile(r.Context(), id)
		if err != nil {
			log.Debug("Profile lookup failed", "error", err, "discord_user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleUpdateEquipped sets one slot or replaces the whole mapping.
// @Summary Update equipped items
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{discord_user_id}/equipped [put]
func HandleUpdateEquipped(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "discord_user_id")

		var req UpdateEquippedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equipped request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var (
			p   *domain.Profile
			err error
		)
		if req.Equipped != nil {
			p, err = profileService.SetEquipped(r.Context(), id, req.Equipped)
		} else {
			if req.Slot == "" {
				respondError(w, http.StatusBadRequest, "slot is required")
				return
			}
			p, err = profileService.EquipItem(r.Context(), id, domain.Slot(req.Slot), req.ItemID)
		}
		if err != nil {
			log.Warn("Failed to update equipped", "error", err, "discord_user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleUnequipAll clears every equipment slot.
// @Summary Unequip everything
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{discord_user_id}/unequip-all [put]
func HandleUnequipAll(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "discord_user_id")

		p, err := profileService.UnequipAll(r.Context(), id)
		if err != nil {
			log.Warn("Failed to unequip all", "error", err, "discord_user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleAutoEquip equips the best owned item in every slot.
// @Summary Auto-equip best items
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{discord_user_id}/auto-equip [put]
func HandleAutoEquip(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "discord_user_id")

		p, err := profileService.AutoEquip(r.Context(), id)
		if err != nil {
			log.Warn("Failed to auto-equip", "error", err, "discord_user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// TotalStatsResponse carries computed effective stats.
type TotalStatsResponse struct {
	DiscordUserID string       `json:"discord_user_id"`
	TotalStats    domain.Stats `json:"total_stats"`
}

// HandleGetTotalStats returns base stats plus equipped bonuses.
// @Summary Get effective stats
// @Tags profile
// @Produce json
// @Success 200 {object} TotalStatsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile/{discord_user_id}/stats [get]
func HandleGetTotalStats(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "discord_user_id")

		total, err := profileService.GetTotalStats(r.Context(), id)
		if err != nil {
			log.Debug("Stats lookup failed", "error", err, "discord_user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, TotalStatsResponse{
			DiscordUserID: id,
			TotalStats:    total,
		})
	}
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
