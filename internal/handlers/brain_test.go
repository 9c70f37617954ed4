package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"second_brain/internal/models"
	"second_brain/internal/service"
)

func TestShareBrain(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		brain       *mockBrain
		code        int
		wantHash    string
		wantMsg     string
		wantShare   int
		wantUnshare int
	}{
		{"enable", `{"share":true}`, &mockBrain{hash: "aZ3kP9qLx2"}, http.StatusOK, "aZ3kP9qLx2", "", 1, 0},
		{"disable", `{"share":false}`, &mockBrain{}, http.StatusOK, "", "removed link", 0, 1},
		{"missing flag", `{}`, &mockBrain{}, http.StatusBadRequest, "", "share flag is required", 0, 0},
		{"wrong type", `{"share":"yes"}`, &mockBrain{}, http.StatusBadRequest, "", "share flag is required", 0, 0},
		{"enable failure", `{"share":true}`, &mockBrain{shareErr: errors.New("boom")}, http.StatusInternalServerError, "", "internal server error", 1, 0},
		{"disable failure", `{"share":false}`, &mockBrain{unshareErr: errors.New("boom")}, http.StatusInternalServerError, "", "internal server error", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 5}, Brain: tc.brain})
			w := postJSON(t, r, "/api/v1/brain/share", tc.body, authHeader("tok"))

			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.code, w.Body.String())
			}
			var out map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if tc.wantHash != "" && out["hash"] != tc.wantHash {
				t.Fatalf("hash=%q, want %q", out["hash"], tc.wantHash)
			}
			if tc.wantMsg != "" && out["message"] != tc.wantMsg {
				t.Fatalf("message=%q, want %q", out["message"], tc.wantMsg)
			}
			if tc.brain.shareCalls != tc.wantShare || tc.brain.unshareCalls != tc.wantUnshare {
				t.Fatalf("calls share=%d unshare=%d", tc.brain.shareCalls, tc.brain.unshareCalls)
			}
		})
	}
}

func TestGetSharedBrain(t *testing.T) {
	shared := models.SharedBrain{
		Username: "alice",
		Content:  []models.Content{{ID: "c1", Link: "https://youtu.be/x", Type: models.TypeYouTube, Tags: []string{}}},
	}

	cases := []struct {
		name  string
		brain *mockBrain
		code  int
	}{
		{"found", &mockBrain{shared: shared}, http.StatusOK},
		{"unknown hash", &mockBrain{sharedErr: service.ErrShareNotFound}, http.StatusNotFound},
		{"store failure", &mockBrain{sharedErr: errors.New("boom")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// no Authorization header: the route is public
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseErr: service.ErrInvalidToken}, Brain: tc.brain})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/brain/aZ3kP9qLx2", nil))

			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d", w.Code, tc.code)
			}
			if tc.brain.lastHash != "aZ3kP9qLx2" {
				t.Fatalf("hash not forwarded: %q", tc.brain.lastHash)
			}
			if tc.code != http.StatusOK {
				return
			}
			var got models.SharedBrain
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Username != "alice" || len(got.Content) != 1 || got.Content[0].Type != "youtube" {
				t.Fatalf("unexpected body %+v", got)
			}
		})
	}
}
