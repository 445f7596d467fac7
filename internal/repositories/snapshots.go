package repositories

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

const snapshotKeyPrefix = "snapshot:"

// Snapshots stores per-store JSON copies of the last fetched server state,
// used to prefill the stores on startup before the first fetch completes.
type Snapshots struct {
	values *KeyValues
}

func NewSnapshotsRepository(db *gorm.DB) *Snapshots {
	return &Snapshots{values: NewKeyValuesRepository(db)}
}

func (repo *Snapshots) Save(ctx context.Context, store string, items any) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return repo.values.Save(ctx, snapshotKeyPrefix+store, data)
}

// Load decodes the snapshot into out and reports whether one existed.
func (repo *Snapshots) Load(ctx context.Context, store string, out any) (bool, error) {
	data, err := repo.values.Load(ctx, snapshotKeyPrefix+store)
	if err != nil || data == nil {
		return false, err
	}
	return true, json.Unmarshal(data, out)
}
