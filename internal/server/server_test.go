package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chuni-tracker/internal/assets"
	"chuni-tracker/internal/config"
	"chuni-tracker/internal/database"
	"chuni-tracker/internal/render"
	"chuni-tracker/internal/repository"
	"chuni-tracker/internal/service"

	"github.com/rs/zerolog"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		AssetHost:    "assets.example.com",
		DatabaseType: "sqlite",
		DBPath:       filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to set up database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// one player with one play
	if _, err := db.Exec("INSERT INTO aime_user (id, username) VALUES (1, 'alice')"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := db.Exec("INSERT INTO aime_card (user, access_code) VALUES (1, 'card-1')"); err != nil {
		t.Fatalf("seed card: %v", err)
	}
	if _, err := db.Exec("INSERT INTO chuni_profile_data (user, version) VALUES (1, 220)"); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if _, err := db.Exec("INSERT INTO chuni_static_music (version, songId, chartId, title, level, genre, artist, jacketPath) VALUES (220, 100, 3, 'Alpha Song', 13, 'ORIGINAL', 'test artist', 'alpha.dds')"); err != nil {
		t.Fatalf("seed chart: %v", err)
	}
	if _, err := db.Exec("INSERT INTO chuni_score_playlog (user, musicId, level, userPlayDate, score, maxCombo) VALUES (1, 100, 3, ?, 1001234, 512)", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("seed play: %v", err)
	}

	renderer := render.NewRenderer(assets.NewClient(cfg))
	playlogSvc := service.NewPlaylogService(
		repository.NewUserRepository(db, zerolog.Nop()),
		repository.NewPlaylogRepository(db, zerolog.Nop()),
		renderer,
		zerolog.Nop(),
	)
	songSvc := service.NewSongService(
		repository.NewMusicRepository(db, zerolog.Nop()),
		renderer,
		zerolog.Nop(),
	)

	srv := httptest.NewServer(NewServer(playlogSvc, songSvc, db, zerolog.Nop()).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body of %s: %v", path, err)
	}
	return resp.StatusCode, string(body)
}

func TestRecentPlayHappyPath(t *testing.T) {
	srv := setupServer(t)

	status, body := get(t, srv, "/api/v1/plays/recent?username=alice&version=220")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}

	var payload render.DisplayPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload.Title != "Alpha Song" {
		t.Errorf("title = %q", payload.Title)
	}
	if payload.ThumbnailURL == nil || !strings.HasSuffix(*payload.ThumbnailURL, "alpha.png") {
		t.Errorf("unexpected thumbnail: %v", payload.ThumbnailURL)
	}
}

func TestRecentPlayUnknownUser(t *testing.T) {
	srv := setupServer(t)

	status, body := get(t, srv, "/api/v1/plays/recent?username=nobody&version=220")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, msgUserNotFound) {
		t.Errorf("body = %s, want user-not-found message", body)
	}
}

func TestRecentPlayNoPlaysDistinctMessage(t *testing.T) {
	srv := setupServer(t)

	// alice exists but has no plays for this version
	status, body := get(t, srv, "/api/v1/plays/recent?username=alice&version=999")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, msgNoRecentPlays) {
		t.Errorf("body = %s, want no-recent-plays message", body)
	}
	if strings.Contains(body, msgUserNotFound) {
		t.Error("no-plays must not reuse the user-not-found message")
	}
}

func TestRecentPlayMissingVersion(t *testing.T) {
	srv := setupServer(t)

	status, _ := get(t, srv, "/api/v1/plays/recent?username=alice")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestRecentPlaysReturnsList(t *testing.T) {
	srv := setupServer(t)

	status, body := get(t, srv, "/api/v1/plays/recent3?username=alice&version=220")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, body)
	}

	var resp struct {
		Plays []render.DisplayPayload `json:"plays"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode payload list: %v", err)
	}
	if len(resp.Plays) != 1 {
		t.Fatalf("got %d plays, want 1", len(resp.Plays))
	}
}

func TestSongLookupInvalidDifficulty(t *testing.T) {
	srv := setupServer(t)

	status, body := get(t, srv, "/api/v1/songs/lookup?title=Alpha+Song&difficulty=LUNATIC")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Invalid difficulty") {
		t.Errorf("body = %s, want invalid-difficulty message", body)
	}
}

func TestSongLookupNotFound(t *testing.T) {
	srv := setupServer(t)

	status, body := get(t, srv, "/api/v1/songs/lookup?title=Nothing")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, msgSongNotFound) {
		t.Errorf("body = %s, want song-not-found message", body)
	}
}

func TestHealthz(t *testing.T) {
	srv := setupServer(t)

	status, _ := get(t, srv, "/healthz")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
}
