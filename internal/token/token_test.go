// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package token

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pressfolio/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	u := testUser()

	tok, err := m.Issue(u, time.Now())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	id, role, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if id != u.ID {
		t.Errorf("Verify() id = %v, want %v", id, u.ID)
	}
	if role != models.RoleAdmin {
		t.Errorf("Verify() role = %v, want admin", role)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	tok, err := m.Issue(testUser(), time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, _, err := m.Verify(tok); err == nil {
		t.Fatal("Verify() accepted an expired token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewManager("secret-a", time.Hour).Issue(testUser(), time.Now())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if _, _, err := NewManager("secret-b", time.Hour).Verify(tok); err == nil {
		t.Fatal("Verify() accepted a token signed with a different secret")
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	if _, _, err := m.Verify("not-a-token"); err == nil {
		t.Fatal("Verify() accepted garbage input")
	}
}
