package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stakeit-app/stakeit-api/internal/auth"
)

const testSecret = "a-long-and-safe-secret-key-for-tests"
const testUserID = "user-123"
const testRole = "user"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but it did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong Role. Expected: %s, got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should have failed for an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error for expired token. Expected: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-token")
		if err == nil {
			t.Fatal("ValidateJWT should have failed for a malformed token, but passed.")
		}
	})
}
