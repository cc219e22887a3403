package localstore

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/uyznfoundation/portal/core/user"
)

type directoryRepository struct {
	db *DB
}

var _ user.Repository = (*directoryRepository)(nil) // interface compliance check

func NewDirectoryRepository(db *DB) user.Repository {
	return &directoryRepository{db: db}
}

// LoadDirectory reads the persisted Directory. Missing or unparsable
// data falls back to a deep copy of the built-in sample set; it never
// fails.
func (repo *directoryRepository) LoadDirectory() (user.Directory, error) {
	raw, err := ioutil.ReadFile(repo.db.path(directoryFile))
	if err != nil {
		return user.SeedDirectory(), nil
	}
	var dir user.Directory
	if err = json.Unmarshal(raw, &dir); err != nil {
		return user.SeedDirectory(), nil
	}
	return dir, nil
}

func (repo *directoryRepository) SaveDirectory(dir user.Directory) error {
	raw, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling directory")
	}
	return repo.db.writeFileAtomic(directoryFile, raw)
}
