// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"pressfolio/internal/middleware"
	"pressfolio/internal/store"
	"pressfolio/internal/token"
)

// Auth groups the authentication handlers.
type Auth struct {
	users  *store.UserStore
	tokens *token.Manager
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, tokens *token.Manager) *Auth {
	return &Auth{users: users, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Login verifies credentials and issues a bearer token. Wrong email and
// wrong password are indistinguishable to the caller.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.users.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	tok, err := a.tokens.Issue(user, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:       tok,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	})
}

// Me returns the account behind the presented token.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())
	if id == nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	user, err := a.users.FindByID(id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
