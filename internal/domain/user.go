package domain

import (
	"slices"
	"time"
)

// User is a registered account. PasswordHash is the bcrypt digest; the plaintext is never kept.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Favorites    []Quote
	CreatedAt    time.Time
}

// Identity is what an authentication token proves about its bearer.
type Identity struct {
	UserID   int64
	Username string
}

// Identity returns the token subject for u.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username}
}

// Clone returns a copy whose favorites are independent of u.
func (u User) Clone() User {
	u.Favorites = CloneQuotes(u.Favorites)
	return u
}

// FavoriteIndex returns the position of the favorite matching key, or -1.
func (u User) FavoriteIndex(key QuoteKey) int {
	return slices.IndexFunc(u.Favorites, func(q Quote) bool { return q.Key() == key })
}
