package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func initTestKey(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	if err := InitJWTKey(); err != nil {
		t.Fatalf("InitJWTKey: %v", err)
	}
}

func TestInitJWTKeyMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if err := InitJWTKey(); err == nil {
		t.Fatal("expected error when JWT_SECRET is empty")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestKey(t)

	token, err := GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("account id = %d, want 42", claims.AccountID)
	}
	if claims.TokenType != "ACCESS" {
		t.Errorf("token type = %q, want ACCESS", claims.TokenType)
	}
}

func TestRefreshTokenType(t *testing.T) {
	initTestKey(t)

	token, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != "REFRESH" {
		t.Errorf("token type = %q, want REFRESH", claims.TokenType)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	initTestKey(t)
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestMiddleware(t *testing.T) {
	initTestKey(t)

	var gotID int
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = AccountID(r.Context())
	})
	handler := Middleware(next)

	tests := []struct {
		name       string
		header     func(t *testing.T) string
		wantStatus int
		wantCalled bool
	}{
		{
			name: "valid access token",
			header: func(t *testing.T) string {
				token, _ := GenerateAccessToken(9)
				return "Bearer " + token
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "missing header",
			header:     func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     func(t *testing.T) string { return "Token abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "refresh token rejected",
			header: func(t *testing.T) string {
				token, _ := GenerateRefreshToken(9)
				return "Bearer " + token
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called = false
			gotID = 0

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if called != tc.wantCalled {
				t.Fatalf("next called = %v, want %v", called, tc.wantCalled)
			}
			if tc.wantCalled && gotID != 9 {
				t.Errorf("account id in context = %d, want 9", gotID)
			}
		})
	}
}

func TestAccountIDMissing(t *testing.T) {
	if _, ok := AccountID(context.Background()); ok {
		t.Fatal("expected no account id in empty context")
	}
}
