// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/service"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
)

const sessionCookieName = "session"

// auth is an HTTP middleware that requires a signed-in user.
//
// The session token is taken from the "Authorization: Bearer" header or,
// for browser requests, from the session cookie. The token is verified and
// its subject loaded via [service.AuthService.Authenticate]; on success the
// user is stored in the request context with [utils.WithUser].
//
// A missing or invalid token, or a token for an unknown user, expires the
// session cookie and redirects to the login page. Any other failure is an
// internal error.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session")
			redirectToLogin(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrUserNotFound):
				log.Warn().Err(err).Msg("session rejected")
				redirectToLogin(w, r)
			default:
				log.Err(err).Msg("error occurred during authentication")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// sessionToken prefers an explicit Authorization header over the cookie.
func sessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
		}
		return token, nil
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSession
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, loginPath, http.StatusFound)
}
