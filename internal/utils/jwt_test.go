// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	machineID := "10002"
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, machineID, time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != machineID {
		t.Errorf("expected subject %s, got %s", machineID, claims.Subject)
	}
	if claims.ID == "" {
		t.Error("expected non-empty jti")
	}
}

func TestGenerateJWTToken_UniqueID(t *testing.T) {
	a, _ := GenerateJWTToken("iss", "10002", time.Minute, "key")
	b, _ := GenerateJWTToken("iss", "10002", time.Minute, "key")

	if a.SignedString == b.SignedString {
		t.Fatal("expected tokens with distinct jti to differ")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		machineID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "m", time.Hour, "key"},
		{"empty machine id", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "m", 0, "key"},
		{"negative duration", "iss", "m", -time.Second, "key"},
		{"empty key", "iss", "m", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.machineID, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", "10002", 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.MachineID != "10002" {
		t.Errorf("expected machine id 10002, got %s", parsed.MachineID)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken("test-issuer", "10002", time.Minute, "secret-key")
	expired, _ := GenerateJWTToken("test-issuer", "10002", time.Nanosecond, "secret-key")
	time.Sleep(time.Second)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Issuer: "test-issuer"})
	noSubjectStr, _ := noSubject.SignedString([]byte("secret-key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "test-issuer"},
		{"wrong issuer", valid.SignedString, "secret-key", "other-issuer"},
		{"expired", expired.SignedString, "secret-key", "test-issuer"},
		{"garbage", "not.a.token", "secret-key", "test-issuer"},
		{"empty subject", noSubjectStr, "secret-key", "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAuthorization) {
				t.Errorf("ParseBearerToken(%q) expected ErrInvalidAuthorization, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
	}
}
