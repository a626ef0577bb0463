package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openmusicapp/go-music-backend/internal/auth"
	"github.com/openmusicapp/go-music-backend/internal/config"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

func init() { gin.SetMode(gin.TestMode) }

const testJWTSecret = "router-test-secret"

func testConfig() config.Config {
	return config.Config{
		Port:        "0",
		GinMode:     gin.TestMode,
		APIBasePath: "/",
		DBDriver:    "sqlite",
		JWTSecret:   testJWTSecret,
		BcryptCost:  4,
		RateRPS:     1000,
		RateBurst:   1000,
		OTEL:        config.OTELConfig{ServiceName: "router-test"},
	}
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, db, testConfig())
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v (%q)", err, w.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNoRoute_EnvelopeFallback(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := envelope(t, w)
	if env["status"] != "fail" || env["message"] != "Resource tidak ditemukan" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}

func TestNoMethod_EnvelopeFallback(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/songs", "", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	env := envelope(t, w)
	if env["message"] != "Metode tidak diizinkan" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}

func TestSongLifecycle(t *testing.T) {
	r, _ := newRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/songs", "", gin.H{
		"title": "Lagu A", "year": 2020, "performer": "X", "genre": "Pop", "duration": 200,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	env := envelope(t, w)
	songID := env["data"].(map[string]any)["songId"].(string)

	// Detail
	w = doJSON(t, r, http.MethodGet, "/songs/"+songID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	song := envelope(t, w)["data"].(map[string]any)["song"].(map[string]any)
	if song["title"] != "Lagu A" || song["performer"] != "X" {
		t.Fatalf("unexpected song payload: %v", song)
	}

	// List holds exactly the reduced projection.
	w = doJSON(t, r, http.MethodGet, "/songs", "", nil)
	songs := envelope(t, w)["data"].(map[string]any)["songs"].([]any)
	if len(songs) != 1 {
		t.Fatalf("expected 1 song, got %d", len(songs))
	}
	if first := songs[0].(map[string]any); first["genre"] != nil || first["year"] != nil {
		t.Fatalf("projection leaked full fields: %v", first)
	}

	// Update
	w = doJSON(t, r, http.MethodPut, "/songs/"+songID, "", gin.H{
		"title": "Lagu B", "year": 2021, "performer": "Y", "genre": "Jazz",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	// Delete, then the detail route 404s.
	w = doJSON(t, r, http.MethodDelete, "/songs/"+songID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/songs/"+songID, "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestCollaborations_RequireAuth(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/collaborations", "", gin.H{
		"playlistId": "playlist-1", "userId": "user-1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	env := envelope(t, w)
	if env["status"] != "fail" || env["message"] != "Missing authentication" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}

func TestCollaborations_EndToEnd(t *testing.T) {
	r, db := newRouter(t)
	ctx := context.Background()

	// Register two users through the API.
	w := doJSON(t, r, http.MethodPost, "/users", "", gin.H{
		"username": "owner", "password": "pw", "fullname": "Owner",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register owner: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	ownerID := envelope(t, w)["data"].(map[string]any)["userId"].(string)

	w = doJSON(t, r, http.MethodPost, "/users", "", gin.H{
		"username": "friend", "password": "pw", "fullname": "Friend",
	})
	friendID := envelope(t, w)["data"].(map[string]any)["userId"].(string)

	// Seed a playlist owned by the first user.
	playlist, err := repo.CreatePlaylist(ctx, db, "Bersama", ownerID)
	if err != nil {
		t.Fatalf("seed playlist: %v", err)
	}

	v := &auth.Verifier{Secret: []byte(testJWTSecret)}
	ownerToken, err := v.Issue(ownerID, time.Hour)
	if err != nil {
		t.Fatalf("issue owner token: %v", err)
	}
	friendToken, err := v.Issue(friendID, time.Hour)
	if err != nil {
		t.Fatalf("issue friend token: %v", err)
	}

	payload := gin.H{"playlistId": playlist.ID, "userId": friendID}

	// A non-owner cannot grant.
	w = doJSON(t, r, http.MethodPost, "/collaborations", friendToken, payload)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner grant: expected 403, got %d (%s)", w.Code, w.Body.String())
	}

	// The owner grants, gets a collab id back.
	w = doJSON(t, r, http.MethodPost, "/collaborations", ownerToken, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("grant: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if id := envelope(t, w)["data"].(map[string]any)["collaborationId"].(string); id == "" {
		t.Fatalf("empty collaboration id")
	}

	// Revoke, then revoking again fails the invariant.
	w = doJSON(t, r, http.MethodDelete, "/collaborations", ownerToken, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("revoke: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodDelete, "/collaborations", ownerToken, payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second revoke: expected 400, got %d", w.Code)
	}
	if env := envelope(t, w); env["message"] != "Kolaborasi gagal dihapus" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}

func TestBasePathPrefix(t *testing.T) {
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	cfg := testConfig()
	cfg.APIBasePath = "/api/v1"
	r := gin.New()
	RegisterRoutes(r, db, cfg)

	if w := doJSON(t, r, http.MethodGet, "/api/v1/songs", "", nil); w.Code != http.StatusOK {
		t.Fatalf("prefixed list: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/songs", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unprefixed list: expected 404, got %d", w.Code)
	}
}
