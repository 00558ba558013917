package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrslyce/equip-detail/internal/handler"
	"github.com/jrslyce/equip-detail/internal/profile"
)

type okPool struct{}

func (okPool) Ping(ctx context.Context) error { return nil }
func (okPool) Close()                         {}

func newTestServer() *Server {
	handler.InitValidator()
	svc := profile.NewService(profile.NewFakeRepository(), profile.Options{ValidateOwnership: true})
	return NewServer(Options{Port: 0, CORSOrigins: []string{"*"}}, okPool{}, svc, nil)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer()
	router := srv.Handler()

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Healthz", func(t *testing.T) {
		rec := do("GET", "/healthz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Readyz", func(t *testing.T) {
		rec := do("GET", "/readyz", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Version", func(t *testing.T) {
		rec := do("GET", "/version", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		rec := do("GET", "/metrics", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("API Root Banner", func(t *testing.T) {
		rec := do("GET", "/api/v1/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "equip-detail")
	})

	t.Run("Profile Lifecycle", func(t *testing.T) {
		// Upsert creates a seeded profile
		rec := do("POST", "/api/v1/profile/upsert",
			[]byte(`{"discord_user_id":"u1","username":"alice"}`))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var created struct {
			Inventory []struct {
				ItemID string `json:"item_id"`
				Slot   string `json:"slot"`
			} `json:"inventory"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.Len(t, created.Inventory, 24)

		// Equip an owned item
		var headItem string
		for _, it := range created.Inventory {
			if it.Slot == "head" {
				headItem = it.ItemID
				break
			}
		}
		require.NotEmpty(t, headItem)

		body := fmt.Sprintf(`{"slot":"head","item_id":"%s"}`, headItem)
		rec = do("PUT", "/api/v1/profile/u1/equipped", []byte(body))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), headItem)

		// Stats reflect the equipped item
		rec = do("GET", "/api/v1/profile/u1/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_stats"`)

		// Auto equip then unequip all
		rec = do("PUT", "/api/v1/profile/u1/auto-equip", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do("PUT", "/api/v1/profile/u1/unequip-all", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do("GET", "/api/v1/profile/u1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"head":null`)
	})

	t.Run("Unknown Profile 404", func(t *testing.T) {
		rec := do("GET", "/api/v1/profile/ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Interactions Ping", func(t *testing.T) {
		rec := do("POST", "/api/v1/interactions", []byte(`{"type":1}`))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"type":1}`, rec.Body.String())
	})

	t.Run("Verify Stub", func(t *testing.T) {
		rec := do("GET", "/api/v1/verify", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Security Headers Applied", func(t *testing.T) {
		rec := do("GET", "/healthz", nil)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})
}
