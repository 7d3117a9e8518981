package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

func TestOAuthProvider_Disabled(t *testing.T) {
	if NewOAuthProvider(config.OAuthConfig{}) != nil {
		t.Error("expected nil provider without configuration")
	}
}

func TestOAuthProvider_Flow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			http.Error(w, "bad code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Profile{Subject: "sub-9", Name: "Ana", Email: "ana@example.com"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOAuthProvider(config.OAuthConfig{
		ClientID:    "cid",
		AuthURL:     srv.URL + "/authorize",
		TokenURL:    srv.URL + "/token",
		UserInfoURL: srv.URL + "/userinfo",
		RedirectURL: "http://localhost/callback",
	})

	loginURL, state := p.LoginURL()
	u, err := url.Parse(loginURL)
	if err != nil {
		t.Fatal(err)
	}
	if u.Query().Get("state") != state || state == "" {
		t.Errorf("state not carried in login url: %s", loginURL)
	}

	profile, err := p.Exchange(context.Background(), "good-code")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if profile.Subject != "sub-9" || profile.Email != "ana@example.com" {
		t.Errorf("unexpected profile %+v", profile)
	}

	if _, err := p.Exchange(context.Background(), "bad-code"); err == nil {
		t.Error("expected error for rejected code")
	}
}
