// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-packet-sync/internal/logger"
	"github.com/MKhiriev/go-packet-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based device authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies its
// HS256 signature, expiry and issuer against the authority configuration,
// and stores the token subject (the machine id) in the request context under
// [utils.MachineIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not a bearer credential ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, mis-signed, issued by someone else or has no
//     subject.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.App.TokenSignKey, h.cfg.App.TokenIssuer)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidToken) {
				log.Err(err).Msg("token rejected")
			} else {
				log.Err(err).Msg("error occurred during parsing token")
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.MachineIDCtxKey, token.MachineID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
