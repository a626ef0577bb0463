package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/openmusicapp/go-music-backend/internal/domain"
	"github.com/openmusicapp/go-music-backend/internal/errs"
	"github.com/openmusicapp/go-music-backend/internal/repo"
)

func init() { gin.SetMode(gin.TestMode) }

// perform routes a single request through a fresh engine.
func perform(t *testing.T, register func(r *gin.Engine), method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	r := gin.New()
	register(r)

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded envelope.
func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

// stubSongService records calls and returns canned results.
type stubSongService struct {
	addID   string
	addErr  error
	song    *domain.Song
	getErr  error
	list    []domain.SongSummary
	listErr error
	opErr   error

	calls int
}

func (s *stubSongService) Add(ctx context.Context, f repo.SongFields) (string, error) {
	s.calls++
	return s.addID, s.addErr
}
func (s *stubSongService) List(ctx context.Context) ([]domain.SongSummary, error) {
	s.calls++
	return s.list, s.listErr
}
func (s *stubSongService) Get(ctx context.Context, id string) (*domain.Song, error) {
	s.calls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.song, nil
}
func (s *stubSongService) Update(ctx context.Context, id string, f repo.SongFields) error {
	s.calls++
	return s.opErr
}
func (s *stubSongService) Delete(ctx context.Context, id string) error {
	s.calls++
	return s.opErr
}

func songRoutes(h *Handlers) func(r *gin.Engine) {
	return func(r *gin.Engine) {
		r.POST("/songs", h.PostSong)
		r.GET("/songs", h.GetSongs)
		r.GET("/songs/:id", h.GetSong)
		r.PUT("/songs/:id", h.PutSong)
		r.DELETE("/songs/:id", h.DeleteSong)
	}
}

func TestPostSong_Created(t *testing.T) {
	svc := &stubSongService{addID: "song-1"}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodPost, "/songs", gin.H{
		"title": "Lagu A", "year": 2020, "performer": "X", "genre": "Pop", "duration": 200,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	env := decode(t, w)
	if env.Status != "success" || env.Message != "Lagu berhasil ditambahkan" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	data := env.Data.(map[string]any)
	if data["songId"] != "song-1" {
		t.Fatalf("expected songId song-1, got %v", data["songId"])
	}
}

func TestPostSong_ValidationShortCircuits(t *testing.T) {
	svc := &stubSongService{addID: "song-1"}
	h := New(svc, nil, nil, nil)

	// Missing required performer.
	w := perform(t, songRoutes(h), http.MethodPost, "/songs", gin.H{
		"title": "Lagu A", "year": 2020, "genre": "Pop",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env := decode(t, w); env.Status != "fail" || env.Message == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if svc.calls != 0 {
		t.Fatalf("service called despite validation failure")
	}
}

func TestPostSong_YearOutOfRange(t *testing.T) {
	svc := &stubSongService{addID: "song-1"}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodPost, "/songs", gin.H{
		"title": "Lagu A", "year": 1200, "performer": "X", "genre": "Pop",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if svc.calls != 0 {
		t.Fatalf("service called despite validation failure")
	}
}

func TestGetSongs_EmptyListIsArray(t *testing.T) {
	svc := &stubSongService{list: []domain.SongSummary{}}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodGet, "/songs", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := decode(t, w)
	songs, ok := env.Data.(map[string]any)["songs"].([]any)
	if !ok {
		t.Fatalf("expected songs array, got %v", env.Data)
	}
	if len(songs) != 0 {
		t.Fatalf("expected empty array, got %v", songs)
	}
}

func TestGetSong_NotFound(t *testing.T) {
	svc := &stubSongService{getErr: errs.NewNotFoundError("Lagu tidak ditemukan")}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodGet, "/songs/song-missing", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env := decode(t, w); env.Status != "fail" || env.Message != "Lagu tidak ditemukan" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestGetSong_UnexpectedErrorIsGeneric500(t *testing.T) {
	svc := &stubSongService{getErr: errors.New("driver: bad connection")}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodGet, "/songs/song-1", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	env := decode(t, w)
	if env.Status != "error" || env.Message != genericServerMessage {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("bad connection")) {
		t.Fatalf("internal error leaked to client: %s", w.Body.String())
	}
}

func TestPutSong_OK(t *testing.T) {
	svc := &stubSongService{}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodPut, "/songs/song-1", gin.H{
		"title": "Lagu B", "year": 2021, "performer": "Y", "genre": "Jazz",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if env := decode(t, w); env.Message != "Lagu berhasil diperbarui" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDeleteSong_NotFound(t *testing.T) {
	svc := &stubSongService{opErr: errs.NewNotFoundError("Lagu gagal dihapus. Id tidak ditemukan")}
	h := New(svc, nil, nil, nil)

	w := perform(t, songRoutes(h), http.MethodDelete, "/songs/song-gone", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env := decode(t, w); env.Message != "Lagu gagal dihapus. Id tidak ditemukan" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
