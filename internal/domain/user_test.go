package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	validUsername := "Alice"
	validEmail := "alice@example.com"
	validPassword := "hashedpassword123"

	user, err := NewUser(validUsername, validEmail, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	// Username is stored in folded form
	if user.Username != "alice" {
		t.Errorf("Expected folded username %q, got %q", "alice", user.Username)
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.HashedPassword != validPassword {
		t.Errorf("Expected hashed password %s, got %s", validPassword, user.HashedPassword)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test empty username
	_, err = NewUser("", validEmail, validPassword)
	if !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test overlong username
	_, err = NewUser(strings.Repeat("a", 65), validEmail, validPassword)
	if !errors.Is(err, ErrUsernameTooLong) {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}

	// Test invalid email
	_, err = NewUser(validUsername, "", validPassword)
	if !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser(validUsername, "invalidemail", validPassword)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test invalid password
	_, err = NewUser(validUsername, validEmail, "")
	if !errors.Is(err, ErrEmptyHashedPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestFoldUsername(t *testing.T) {
	cases := map[string]string{
		"Alice":      "alice",
		"  Alice  ":  "alice",
		"BOB":        "bob",
		"carol":      "carol",
		"  MiXeD  ":  "mixed",
		"":           "",
		"   ":        "",
		"UPPER_case": "upper_case",
	}

	for input, want := range cases {
		if got := FoldUsername(input); got != want {
			t.Errorf("FoldUsername(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test empty username
	invalidUser = validUser
	invalidUser.Username = ""
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test username at the boundary
	invalidUser = validUser
	invalidUser.Username = strings.Repeat("a", 64)
	if err := invalidUser.Validate(); err != nil {
		t.Errorf("Expected 64-char username to be valid, got %v", err)
	}
	invalidUser.Username = strings.Repeat("a", 65)
	if err := invalidUser.Validate(); !errors.Is(err, ErrUsernameTooLong) {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}

	// Test invalid email
	invalidUser = validUser
	invalidUser.Email = ""
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyEmail) {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	invalidUser = validUser
	invalidUser.Email = "not-an-email"
	if err := invalidUser.Validate(); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test empty hashed password
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); !errors.Is(err, ErrEmptyHashedPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}
