// Package store holds the in-memory quote and account collections and their
// JSON snapshot formats.
package store

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// SnapshotVersion is written into every snapshot envelope.
const SnapshotVersion = 1

// QuoteRecord is the on-disk quote shape.
type QuoteRecord struct {
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Categories []string `json:"categories"`
	AddedBy    string   `json:"addedBy,omitempty"`
}

// QuoteSnapshot is the quote store's full state. ByCategory records the
// order of every label's bucket; on restore it also contributes labels and
// records missing from All.
type QuoteSnapshot struct {
	Version    int                      `json:"version"`
	SavedAt    time.Time                `json:"savedAt"`
	All        []QuoteRecord            `json:"all"`
	ByCategory map[string][]QuoteRecord `json:"byCategory"`
}

// UserRecord is the on-disk user shape. Files written by the first release
// store the bcrypt digest under "password"; it is read into LegacyPassword.
type UserRecord struct {
	ID             int64         `json:"id"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	PasswordHash   string        `json:"passwordHash,omitempty"`
	LegacyPassword string        `json:"password,omitempty"`
	Favorites      []QuoteRecord `json:"favorites"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// UserSnapshot is the account store's full state.
type UserSnapshot struct {
	Version int          `json:"version"`
	SavedAt time.Time    `json:"savedAt"`
	Users   []UserRecord `json:"users"`
}

// UnmarshalJSON accepts both the envelope and a bare array of users.
func (s *UserSnapshot) UnmarshalJSON(data []byte) error {
	if gjson.ParseBytes(data).IsArray() {
		var users []UserRecord
		if err := json.Unmarshal(data, &users); err != nil {
			return err
		}

		*s = UserSnapshot{Users: users}

		return nil
	}

	type envelope UserSnapshot

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*s = UserSnapshot(env)

	return nil
}

func toRecord(q domain.Quote) QuoteRecord {
	return QuoteRecord{
		Content:    q.Content,
		Author:     q.Author,
		Categories: domain.NormalizeCategories(q.Categories),
		AddedBy:    q.AddedBy,
	}
}

func toRecords(quotes []domain.Quote) []QuoteRecord {
	out := make([]QuoteRecord, len(quotes))
	for i, q := range quotes {
		out[i] = toRecord(q)
	}

	return out
}

func fromRecord(r QuoteRecord) domain.Quote {
	return domain.Quote{
		Content:    r.Content,
		Author:     r.Author,
		Categories: domain.NormalizeCategories(r.Categories),
		AddedBy:    r.AddedBy,
	}
}

func fromRecords(records []QuoteRecord) []domain.Quote {
	out := make([]domain.Quote, len(records))
	for i, r := range records {
		out[i] = fromRecord(r)
	}

	return out
}

func userToRecord(u domain.User) UserRecord {
	return UserRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Favorites:    toRecords(u.Favorites),
		CreatedAt:    u.CreatedAt,
	}
}

func userFromRecord(r UserRecord) domain.User {
	hash := r.PasswordHash
	if hash == "" {
		hash = r.LegacyPassword
	}

	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: hash,
		Favorites:    fromRecords(r.Favorites),
		CreatedAt:    r.CreatedAt,
	}
}
