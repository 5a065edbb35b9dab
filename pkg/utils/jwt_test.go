package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	operatorID := uuid.New()

	token, err := m.GenerateAccessToken(operatorID, "cashier@dajaj.shop", "Cashier")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.OperatorID != operatorID {
		t.Errorf("OperatorID = %v, want %v", claims.OperatorID, operatorID)
	}
	if claims.Email != "cashier@dajaj.shop" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Issuer != "dajaj-pos" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New(), "x@y.z", "X")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Error("token signed with a different secret should fail validation")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "x@y.z", "X")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Error("expired token should fail validation")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	if _, err := m.ValidateAccessToken("not.a.token"); err == nil {
		t.Error("malformed token should fail validation")
	}
}
