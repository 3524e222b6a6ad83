// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pressfolio/internal/handlers"
	"pressfolio/internal/middleware"
	"pressfolio/internal/seo"
	"pressfolio/internal/store"
	"pressfolio/internal/token"
)

// testRouter builds the full route tree. Stores carry a nil connection;
// requests that would reach the database are rejected by middleware
// before any query runs.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	tokens := token.NewManager("test-secret", time.Minute)
	limiter := middleware.NewRateLimiter(100, time.Minute)
	t.Cleanup(limiter.Stop)

	site := seo.SiteInfo{Name: "Test", BaseURL: "http://localhost"}
	admin := handlers.NewAdmin(
		store.NewBlogPostStore(nil), store.NewCourseStore(nil), store.NewNewsItemStore(nil),
		store.NewPageStore(nil), store.NewProjectStore(nil),
		nil, nil, nil, site)
	auth := handlers.NewAuth(store.NewUserStore(nil), tokens)
	public := handlers.NewPublic(
		store.NewBlogPostStore(nil), store.NewCourseStore(nil), store.NewNewsItemStore(nil),
		store.NewPageStore(nil), store.NewProjectStore(nil),
		store.NewUserStore(nil), store.NewTaxonomyStore(nil),
		nil, nil, site)
	dashboard := handlers.NewDashboard(store.NewDashboardStore(nil))

	return New(tokens, limiter, admin, auth, public, dashboard)
}

func TestRouterAdminRequiresAuth(t *testing.T) {
	r := testRouter(t)

	paths := []string{
		"/api/v1/admin/dashboard",
		"/api/v1/admin/blog-posts/",
		"/api/v1/admin/pages/",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("got %d, want 401 without a token", rr.Code)
			}
		})
	}
}

func TestRouterHealthRoute(t *testing.T) {
	r := testRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /health through the router: got %d, want 200", rr.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestHealthHandlerMethods(t *testing.T) {
	// Health endpoint only accepts GET.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health: got %d, want 200", w.Code)
	}
}
