package jwt

import (
	"testing"
	"time"
)

func TestNewTokenManager(t *testing.T) {
	secret := "test-secret"
	tm := NewTokenManager(secret, 24, 168)
	if tm == nil {
		t.Fatal("NewTokenManager returned nil")
	}
	if string(tm.secret) != secret {
		t.Errorf("Expected secret %s, got %s", secret, string(tm.secret))
	}
	if tm.expireDur != 24*time.Hour {
		t.Errorf("Expected expireDur %v, got %v", 24*time.Hour, tm.expireDur)
	}
	if tm.refreshDur != 168*time.Hour {
		t.Errorf("Expected refreshDur %v, got %v", 168*time.Hour, tm.refreshDur)
	}
}

func TestGenerateToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 24, 168)

	token, err := tm.GenerateToken("user123", "testuser")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Error("Generated token is empty")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "user123" {
		t.Errorf("Expected UserID user123, got %s", claims.UserID)
	}
	if claims.UserName != "testuser" {
		t.Errorf("Expected UserName testuser, got %s", claims.UserName)
	}
}

func TestParseToken_ValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 24, 168)

	token, err := tm.GenerateToken("user123", "testuser")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	now := time.Now()
	if claims.IssuedAt.Time.After(now) {
		t.Error("IssuedAt is in the future")
	}
	if claims.ExpiresAt.Time.Before(now) {
		t.Error("ExpiresAt is in the past")
	}
	if claims.NotBefore.Time.After(now) {
		t.Error("NotBefore is in the future")
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 24, 168)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{
			name:        "empty token",
			token:       "",
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "malformed token",
			token:       "not.a.valid.token",
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "random string",
			token:       "randomstring",
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ParseToken(tt.token)
			if err == nil {
				t.Error("Expected error, got nil")
			}
			if err != tt.expectedErr {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tm1 := NewTokenManager("secret1", 24, 168)
	tm2 := NewTokenManager("secret2", 24, 168)

	token, err := tm1.GenerateToken("user123", "testuser")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = tm2.ParseToken(token)
	if err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// expireDur of 0 hours makes the token expired immediately
	tm := NewTokenManager("test-secret", 0, 168)

	token, err := tm.GenerateToken("user123", "testuser")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = tm.ParseToken(token)
	if err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	t.Run("refreshes token close to expiry", func(t *testing.T) {
		// expireDur 1h, refresh window 24h: token is always within the window
		tm := NewTokenManager("test-secret", 1, 24)

		token, err := tm.GenerateToken("user123", "testuser")
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}

		refreshed, err := tm.RefreshToken(token)
		if err != nil {
			t.Fatalf("RefreshToken failed: %v", err)
		}

		claims, err := tm.ParseToken(refreshed)
		if err != nil {
			t.Fatalf("ParseToken of refreshed token failed: %v", err)
		}
		if claims.UserID != "user123" {
			t.Errorf("Expected UserID user123, got %s", claims.UserID)
		}
	})

	t.Run("rejects token far from expiry", func(t *testing.T) {
		// expireDur 100h, refresh window 1h: token is not yet eligible
		tm := NewTokenManager("test-secret", 100, 1)

		token, err := tm.GenerateToken("user123", "testuser")
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}

		if _, err := tm.RefreshToken(token); err == nil {
			t.Error("Expected error for token not yet eligible for refresh")
		}
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		tm := NewTokenManager("test-secret", 24, 168)
		if _, err := tm.RefreshToken("garbage"); err != ErrInvalidToken {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
