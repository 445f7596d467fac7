package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/jathow/careertrack/internal/entities"
)

// KeyValues is the local persistent key/value store, the desktop client's
// stand-in for browser storage.
type KeyValues struct {
	db *gorm.DB
}

func NewKeyValuesRepository(db *gorm.DB) *KeyValues {
	return &KeyValues{db: db}
}

func (repo *KeyValues) Save(ctx context.Context, key string, value []byte) error {
	return repo.db.WithContext(ctx).Save(entities.StoredValue{
		Key:   key,
		Value: value,
	}).Error
}

// Load returns nil without an error when the key is absent.
func (repo *KeyValues) Load(ctx context.Context, key string) ([]byte, error) {
	stored := &entities.StoredValue{}
	err := repo.db.WithContext(ctx).First(stored, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return stored.Value, nil
}

func (repo *KeyValues) Remove(ctx context.Context, key string) error {
	return repo.db.WithContext(ctx).Delete(&entities.StoredValue{}, "key = ?", key).Error
}
