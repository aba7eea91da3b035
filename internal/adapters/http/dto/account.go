package dto

import (
	"github.com/jsamuelsen/quotevault/internal/domain"
)

// Response messages for account operations.
const (
	MessageRegistered      = "User registered successfully"
	MessageLoggedIn        = "Logged in successfully"
	MessageFavoriteAdded   = "Quote added to favorites"
	MessageFavoriteRemoved = "Quote removed from favorites"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// User is the public view of an account. The password hash never leaves the store.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FromUser converts a domain user.
func FromUser(u domain.User) User {
	return User{ID: u.ID, Username: u.Username, Email: u.Email}
}

// AuthResponse answers register and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// AddFavoriteRequest is the body of POST /favorites.
type AddFavoriteRequest struct {
	Quote *Quote `json:"quote" validate:"required"`
}

// RemoveFavoriteRequest is the body of DELETE /favorites.
type RemoveFavoriteRequest struct {
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

// FavoritesResponse answers favorite mutations with the resulting list.
type FavoritesResponse struct {
	Message   string  `json:"message"`
	Favorites []Quote `json:"favorites"`
}
