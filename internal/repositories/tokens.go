package repositories

import (
	"context"

	"gorm.io/gorm"
)

const tokenKey = "token"

// Tokens persists the session token under a fixed key, mirroring how the web
// client keeps it in browser storage.
type Tokens struct {
	values *KeyValues
}

func NewTokensRepository(db *gorm.DB) *Tokens {
	return &Tokens{values: NewKeyValuesRepository(db)}
}

func (repo *Tokens) Token(ctx context.Context) (string, error) {
	value, err := repo.values.Load(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (repo *Tokens) Set(ctx context.Context, token string) error {
	return repo.values.Save(ctx, tokenKey, []byte(token))
}

func (repo *Tokens) Clear(ctx context.Context) error {
	return repo.values.Remove(ctx, tokenKey)
}
