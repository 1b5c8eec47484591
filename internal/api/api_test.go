package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/soundwhiskers/swx/internal/models"
	"github.com/soundwhiskers/swx/internal/shared"
)

func TestClient(t *testing.T) {
	t.Run("NewClient", func(t *testing.T) {
		t.Run("with empty base URL uses default", func(t *testing.T) {
			client := NewClient("", "token", nil)
			if client.baseURL != defaultBaseURL {
				t.Errorf("expected default base URL, got %s", client.baseURL)
			}
		})

		t.Run("with nil http client uses default", func(t *testing.T) {
			client := NewClient("http://localhost", "", nil)
			if client.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient")
			}
		})
	})

	t.Run("SetRateLimit", func(t *testing.T) {
		client := NewClient("http://localhost", "", nil)

		client.SetRateLimit(2)
		if client.limiter == nil {
			t.Error("expected limiter to be installed")
		}

		client.SetRateLimit(0)
		if client.limiter != nil {
			t.Error("expected non-positive rate to remove the limiter")
		}
	})

	t.Run("Do", func(t *testing.T) {
		t.Run("sends bearer token and decodes response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer test_token" {
					t.Errorf("expected bearer token header, got %q", got)
				}
				if got := r.Header.Get("Content-Type"); got != "application/json" {
					t.Errorf("expected JSON content type, got %q", got)
				}
				w.Write([]byte(`{"status":"ok"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test_token", nil)

			var result map[string]string
			if err := client.Do(context.Background(), http.MethodGet, "/health", nil, &result); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result["status"] != "ok" {
				t.Errorf("expected decoded response, got %v", result)
			}
		})

		t.Run("omits authorization header without token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "" {
					t.Errorf("expected no authorization header, got %q", got)
				}
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "", nil)
			if err := client.Do(context.Background(), http.MethodGet, "/health", nil, nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("wraps transport failures", func(t *testing.T) {
			client := NewClient("http://127.0.0.1:1", "", nil)

			err := client.Do(context.Background(), http.MethodGet, "/health", nil, nil)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("classification", func(t *testing.T) {
			tests := []struct {
				name    string
				status  int
				body    string
				wantErr error
			}{
				{
					name:    "403 with pro plan code",
					status:  http.StatusForbidden,
					body:    `{"code":"PRO_PLAN_REQUIRED","message":"upgrade required"}`,
					wantErr: shared.ErrProPlanRequired,
				},
				{
					name:    "403 without pro plan code",
					status:  http.StatusForbidden,
					body:    `{"code":"FORBIDDEN","message":"nope"}`,
					wantErr: shared.ErrAPIRequest,
				},
				{
					name:    "429 quota exceeded",
					status:  http.StatusTooManyRequests,
					body:    `{"message":"slow down"}`,
					wantErr: shared.ErrQuotaExceeded,
				},
				{
					name:    "404 playlist not found",
					status:  http.StatusNotFound,
					body:    `{}`,
					wantErr: shared.ErrPlaylistNotFound,
				},
				{
					name:    "401 not authenticated",
					status:  http.StatusUnauthorized,
					body:    `{}`,
					wantErr: shared.ErrNotAuthenticated,
				},
				{
					name:    "500 generic failure",
					status:  http.StatusInternalServerError,
					body:    `{"message":"boom"}`,
					wantErr: shared.ErrAPIRequest,
				},
				{
					name:    "502 with non-JSON body",
					status:  http.StatusBadGateway,
					body:    `bad gateway`,
					wantErr: shared.ErrAPIRequest,
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(tt.status)
						w.Write([]byte(tt.body))
					}))
					defer server.Close()

					client := NewClient(server.URL, "", nil)
					err := client.Do(context.Background(), http.MethodGet, "/api/test", nil, nil)

					if !errors.Is(err, tt.wantErr) {
						t.Errorf("expected %v, got %v", tt.wantErr, err)
					}
				})
			}
		})

		t.Run("includes backend message in generic failures", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"database unavailable"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "", nil)
			err := client.Do(context.Background(), http.MethodGet, "/api/test", nil, nil)

			if err == nil || !strings.Contains(err.Error(), "database unavailable") {
				t.Errorf("expected backend message in error, got %v", err)
			}
		})

		t.Run("cancelled context aborts rate limiter wait", func(t *testing.T) {
			client := NewClient("http://localhost", "", nil)
			client.SetRateLimit(0.001)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// First token is available immediately, so burn it.
			_ = client.Do(context.Background(), http.MethodGet, "/health", nil, nil)

			err := client.Do(ctx, http.MethodGet, "/health", nil, nil)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest from cancelled wait, got %v", err)
			}
		})
	})

	t.Run("GeneratePlaylist", func(t *testing.T) {
		t.Run("posts prompt and stamps it on the preview", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if r.URL.Path != "/api/playlists/generate" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(`{"count":2,"warningUnderMinCount":false,"tracks":[{"id":"t1","title":"Song One","artist":"Artist A"},{"id":"t2","title":"Song Two","artist":"Artist B"}]}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "token", nil)
			preview, err := client.GeneratePlaylist(context.Background(), "morning run")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if preview.Prompt != "morning run" {
				t.Errorf("expected prompt to be stamped, got %q", preview.Prompt)
			}
			if preview.Count != 2 || len(preview.Tracks) != 2 {
				t.Errorf("expected 2 tracks, got count=%d len=%d", preview.Count, len(preview.Tracks))
			}
		})

		t.Run("surfaces entitlement denial", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"code":"PRO_PLAN_REQUIRED"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "token", nil)
			_, err := client.GeneratePlaylist(context.Background(), "anything")
			if !errors.Is(err, shared.ErrProPlanRequired) {
				t.Errorf("expected ErrProPlanRequired, got %v", err)
			}
		})
	})

	t.Run("CreatePlaylist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/playlists" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.Write([]byte(`{"id":"pl_1","name":"Morning Run","trackCount":12}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "token", nil)
		playlist, err := client.CreatePlaylist(context.Background(), models.PlaylistDraft{Name: "Morning Run"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if playlist.ID != "pl_1" || playlist.TrackCount != 12 {
			t.Errorf("unexpected playlist %+v", playlist)
		}
	})

	t.Run("GetProfile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/profile" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"id":"u_1","email":"cat@example.com","plan":"pro"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "token", nil)
		profile, err := client.GetProfile(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !profile.IsPro() {
			t.Error("expected pro plan profile")
		}
	})

	t.Run("GetPlaylistTracks escapes the playlist ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.EscapedPath(), "/api/playlists/pl%2F1") {
				t.Errorf("expected escaped ID in path, got %s", r.URL.EscapedPath())
			}
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "token", nil)
		if _, err := client.GetPlaylistTracks(context.Background(), "pl/1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("DeletePlaylist maps 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, "token", nil)
		err := client.DeletePlaylist(context.Background(), "missing")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}
