package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/core/service"
)

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)
	env.register(t, "alice", "pw1")

	tests := []struct {
		name        string
		body        map[string]string
		wantMessage string
		wantToken   bool
	}{
		{"authenticated", map[string]string{"username": "alice", "password": "pw1"}, "success", true},
		{"wrong password", map[string]string{"username": "alice", "password": "pw2"}, "bad password", false},
		{"unknown user", map[string]string{"username": "bob", "password": "x"}, "not registered", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.post(t, "/login", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200. Body: %s", w.Code, w.Body.String())
			}

			resp := decode[dto.LoginResponse](t, w)
			if resp.Code != dto.CodeOK {
				t.Errorf("code = %d, want %d", resp.Code, dto.CodeOK)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
			if (resp.Token != "") != tt.wantToken {
				t.Errorf("token = %q, want token: %v", resp.Token, tt.wantToken)
			}
		})
	}
}

func TestLogin_TokenIsIssuedForProfile(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.register(t, "alice", "pw1")

	resp := decode[dto.LoginResponse](t, env.post(t, "/login", map[string]string{"username": "alice", "password": "pw1"}))

	claims, err := env.tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "alice" || claims.UserID != userID {
		t.Errorf("claims = %+v, want alice/%s", claims, userID)
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.post(t, "/login", map[string]string{"username": "alice"})
		if w.Code != dto.StatusFailure {
			t.Fatalf("status = %d, want %d", w.Code, dto.StatusFailure)
		}
		resp := decode[dto.LoginFailureResponse](t, w)
		if resp.Message != "login failed" || resp.Error == "" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		env := setupTestEnv(t)
		env.db.Close()

		w := env.post(t, "/login", map[string]string{"username": "alice", "password": "pw1"})
		if w.Code != dto.StatusFailure {
			t.Fatalf("status = %d, want %d", w.Code, dto.StatusFailure)
		}
		resp := decode[dto.LoginFailureResponse](t, w)
		if resp.Code != dto.CodeFail || resp.Message != "login failed" || resp.Error == "" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})
}

func TestLoginStatus(t *testing.T) {
	env := setupTestEnv(t)
	userID := env.register(t, "alice", "pw1")

	token, err := env.tokens.Issue("alice", userID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	t.Run("authenticated", func(t *testing.T) {
		w := env.post(t, "/login/status", map[string]string{"token": token})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decode[dto.StatusResponse](t, w)
		if resp.Code != dto.CodeOK || resp.Username != "alice" || resp.UserID != userID {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("bearer header fallback", func(t *testing.T) {
		req := newJSONRequest(t, "/login/status", "{}")
		req.Header.Set("Authorization", "Bearer "+token)
		w := env.serve(req)

		resp := decode[dto.StatusResponse](t, w)
		if w.Code != http.StatusOK || resp.Username != "alice" {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("chunked malformed body", func(t *testing.T) {
		req := newJSONRequest(t, "/login/status", `{"token": `)
		req.ContentLength = -1
		req.Header.Set("Authorization", "Bearer "+token)
		w := env.serve(req)

		if w.Code != dto.StatusFailure {
			t.Fatalf("status = %d, want %d. Body: %s", w.Code, dto.StatusFailure, w.Body.String())
		}
		if resp := parseErrorResponse(t, w); resp.Code != dto.CodeFail || resp.ErrMsg == "" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("chunked empty body uses bearer header", func(t *testing.T) {
		req := newJSONRequest(t, "/login/status", "")
		req.Body = io.NopCloser(strings.NewReader(""))
		req.ContentLength = -1
		req.Header.Set("Authorization", "Bearer "+token)
		w := env.serve(req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200. Body: %s", w.Code, w.Body.String())
		}
		if resp := decode[dto.StatusResponse](t, w); resp.Username != "alice" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := env.signClaims(t, service.TokenClaims{
			Username: "alice",
			UserID:   userID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		w := env.post(t, "/login/status", map[string]string{"token": expired})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := parseErrorResponse(t, w)
		if resp.Code != dto.CodeFail || resp.ErrMsg != "session expired" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, tok := range []string{"garbage", "", token + "x"} {
			w := env.post(t, "/login/status", map[string]string{"token": tok})
			if w.Code != dto.StatusFailure {
				t.Fatalf("token %q: status = %d, want %d", tok, w.Code, dto.StatusFailure)
			}
			resp := parseErrorResponse(t, w)
			if resp.Code != dto.CodeFail || resp.ErrMsg == "" {
				t.Errorf("token %q: unexpected body: %+v", tok, resp)
			}
		}
	})

	t.Run("missing expiry", func(t *testing.T) {
		noExp := env.signClaims(t, service.TokenClaims{Username: "alice", UserID: userID})

		w := env.post(t, "/login/status", map[string]string{"token": noExp})
		if w.Code != dto.StatusFailure {
			t.Fatalf("status = %d, want %d", w.Code, dto.StatusFailure)
		}
	})
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t)

	w := env.post(t, "/logout", map[string]string{"token": "anything"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp := decode[dto.MessageResponse](t, w); resp.Code != dto.CodeOK {
		t.Errorf("code = %d, want %d", resp.Code, dto.CodeOK)
	}

	w = env.post(t, "/logout", map[string]string{})
	if w.Code != dto.StatusFailure {
		t.Fatalf("status = %d, want %d", w.Code, dto.StatusFailure)
	}
	if resp := parseErrorResponse(t, w); resp.ErrMsg != "logout failed" {
		t.Errorf("errmsg = %q", resp.ErrMsg)
	}

	req := newJSONRequest(t, "/logout", `{"token": `)
	req.Header.Set("Authorization", "Bearer anything")
	w = env.serve(req)
	if w.Code != dto.StatusFailure {
		t.Fatalf("status = %d, want %d", w.Code, dto.StatusFailure)
	}
	resp := parseErrorResponse(t, w)
	if !strings.HasPrefix(resp.ErrMsg, "logout failed: ") || resp.ErrMsg == "logout failed: " {
		t.Errorf("errmsg = %q, want the parse error", resp.ErrMsg)
	}

	req = newJSONRequest(t, "/logout", "")
	req.Header.Set("Authorization", "Bearer anything")
	if w = env.serve(req); w.Code != http.StatusOK {
		t.Errorf("empty body with bearer: status = %d, want 200", w.Code)
	}
}

func TestRegister(t *testing.T) {
	env := setupTestEnv(t)

	w := env.post(t, "/register", map[string]string{
		"username":    "alice",
		"password":    "pw1",
		"phone":       "555-0100",
		"classId":     "cs-2",
		"college":     "Engineering",
		"scoreNumber": "2021001",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	if resp := decode[dto.MessageResponse](t, w); resp.Code != dto.CodeOK {
		t.Errorf("code = %d", resp.Code)
	}

	resp := decode[dto.LoginResponse](t, env.post(t, "/login", map[string]string{"username": "alice", "password": "pw1"}))
	if resp.Message != "success" {
		t.Errorf("login after register: %+v", resp)
	}

	w = env.post(t, "/register", map[string]string{"username": "bob"})
	if w.Code != dto.StatusFailure {
		t.Errorf("status = %d, want %d", w.Code, dto.StatusFailure)
	}
}
