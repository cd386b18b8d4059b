// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-packet-sync/internal/config"
	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/mock"
	"github.com/MKhiriev/go-packet-sync/internal/service"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
	"github.com/MKhiriev/go-packet-sync/models"
)

const (
	testSignKey   = "test-sign-key"
	testIssuer    = "packet-sync"
	testMachineID = "10002"
	testSyncPath  = "/registrationprocessor/v1/registrationstatus/sync"
)

func testAuthorityConfig() *config.AuthorityConfig {
	return &config.AuthorityConfig{
		App:      config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Minute},
		SyncPath: testSyncPath,
	}
}

func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthorityService) {
	t.Helper()
	authority := mock.NewMockAuthorityService(gomock.NewController(t))
	services := &service.AuthorityServices{AuthorityService: authority}
	return NewHandler(services, testAuthorityConfig(), logger.Nop()), authority
}

func bearer(t *testing.T, issuer, signKey string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, testMachineID, time.Minute, signKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func syncRequest(t *testing.T, body string, authorization string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, testSyncPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

// ── POST sync ────────────────────────────────────────────────────────────────

func TestSyncPackets_Success(t *testing.T) {
	h, authority := newTestHandler(t)

	want := models.SyncResponse{
		ID:       models.SyncRequestID,
		Version:  models.SyncRequestVersion,
		Response: []models.SyncStatus{{RegistrationID: "10001100020001", Status: models.SyncStatusSuccess}},
	}
	authority.EXPECT().ProcessSync(gomock.Any(), testMachineID, "c2VhbGVk").Return(want)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, syncRequest(t, `"c2VhbGVk"`, bearer(t, testIssuer, testSignKey)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	var got models.SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, want.Response, got.Response)
}

func TestSyncPackets_RejectionIsStatusOK(t *testing.T) {
	h, authority := newTestHandler(t)

	authority.EXPECT().ProcessSync(gomock.Any(), testMachineID, "garbage").
		Return(models.SyncResponse{Errors: []models.ServiceError{{ErrorCode: service.CodeInvalidEncoding, Message: "bad"}}})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, syncRequest(t, `"garbage"`, bearer(t, testIssuer, testSignKey)))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Errors, 1)
	assert.Equal(t, service.CodeInvalidEncoding, got.Errors[0].ErrorCode)
}

func TestSyncPackets_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, syncRequest(t, `{"not":"a string"}`, bearer(t, testIssuer, testSignKey)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSyncPackets_Unauthorized(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "not a bearer credential", authorization: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", authorization: "Bearer "},
		{name: "garbage token", authorization: "Bearer not.a.jwt"},
		{name: "wrong sign key", authorization: "wrong-key"},
		{name: "wrong issuer", authorization: "wrong-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			authorization := tt.authorization
			switch authorization {
			case "wrong-key":
				authorization = bearer(t, testIssuer, "another-key")
			case "wrong-issuer":
				authorization = bearer(t, "someone-else", testSignKey)
			}

			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, syncRequest(t, `"c2VhbGVk"`, authorization))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestSyncPackets_WrongMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, testSyncPath, nil)
	req.Header.Set("Authorization", bearer(t, testIssuer, testSignKey))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// ── GET status ───────────────────────────────────────────────────────────────

func TestPacketStatus(t *testing.T) {
	h, authority := newTestHandler(t)

	authority.EXPECT().Status("10001100020001").Return(models.SyncStatusSuccess, true)
	authority.EXPECT().Status("unknown").Return("", false)

	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, testSyncPath+"/status/10001100020001", nil)
	req.Header.Set("Authorization", bearer(t, testIssuer, testSignKey))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got packetStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, packetStatusResponse{RegistrationID: "10001100020001", Status: models.SyncStatusSuccess}, got)

	req = httptest.NewRequest(http.MethodGet, testSyncPath+"/status/unknown", nil)
	req.Header.Set("Authorization", bearer(t, testIssuer, testSignKey))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
