package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"
)

func testKeyPair(t *testing.T) (privPEM, pubPEM []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	privPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return privPEM, pubPEM
}

func newTestService(t *testing.T, accessTTL time.Duration) *Service {
	t.Helper()
	privPEM, pubPEM := testKeyPair(t)
	svc, err := NewService(privPEM, pubPEM, accessTTL, 24*time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestTokenPairRoundTrip(t *testing.T) {
	svc := newTestService(t, 15*time.Minute)

	pair, err := svc.GenerateTokenPair(42)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	access, err := svc.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if access.UserID != 42 || access.TokenType != "access" {
		t.Errorf("access claims = %+v", access)
	}

	refresh, err := svc.ValidateToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if refresh.TokenType != "refresh" {
		t.Errorf("refresh token_type = %q", refresh.TokenType)
	}
	if refresh.ID == "" {
		t.Error("refresh token is missing its jti")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := newTestService(t, -time.Minute)
	pair, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if _, err := svc.ValidateToken(pair.AccessToken); err == nil {
		t.Error("expired access token passed validation")
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	issuer := newTestService(t, 15*time.Minute)
	verifier := newTestService(t, 15*time.Minute)

	pair, err := issuer.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if _, err := verifier.ValidateToken(pair.AccessToken); err == nil {
		t.Error("token from a different key pair passed validation")
	}
	if _, err := verifier.ValidateToken(""); err == nil {
		t.Error("empty token passed validation")
	}
}
