package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsam3000/flashycardycourse/ent"
	entuser "github.com/tsam3000/flashycardycourse/ent/user"
	"github.com/tsam3000/flashycardycourse/internal/auth"
)

// Users manages local profiles.
type Users struct {
	client *ent.Client
}

// User is a local profile summary. The password hash never leaves the store.
type User struct {
	ID       string
	Username string
}

// Create registers a new profile with a bcrypt-hashed password.
func (r *Users) Create(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, fmt.Errorf("username must not be empty")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u, err := r.client.User.Create().
		SetUsername(username).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return User{}, fmt.Errorf("username %q is taken", username)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return User{ID: u.ID.String(), Username: u.Username}, nil
}

// Authenticate verifies a username/password pair and returns credentials
// for it. Unknown usernames and wrong passwords both yield
// auth.ErrUnauthorized.
func (r *Users) Authenticate(ctx context.Context, username, password string) (auth.Credentials, error) {
	u, err := r.client.User.Query().
		Where(entuser.UsernameEQ(strings.TrimSpace(username))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return auth.Credentials{}, auth.ErrUnauthorized
		}
		return auth.Credentials{}, fmt.Errorf("query user: %w", err)
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return auth.Credentials{}, err
	}

	return auth.Credentials{UserID: u.ID}, nil
}

// List returns all profiles ordered by username.
func (r *Users) List(ctx context.Context) ([]User, error) {
	users, err := r.client.User.Query().
		Order(ent.Asc(entuser.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, User{ID: u.ID.String(), Username: u.Username})
	}
	return out, nil
}
