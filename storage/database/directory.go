package database

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/uyznfoundation/portal/core/user"
)

// Directory records are stored as one JSON document per row, in
// partition order. SaveDirectory rewrites the whole table in one
// transaction: the persisted form is a full snapshot, never a diff,
// matching the localstore's behaviour.
const directorySchema = `
CREATE TABLE IF NOT EXISTS directory_users (
	id   BIGINT PRIMARY KEY,
	role TEXT   NOT NULL,
	pos  INT    NOT NULL,
	doc  JSONB  NOT NULL
)`

type directoryRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*directoryRepository)(nil) // interface compliance check

func NewDirectoryRepository(db *sqlx.DB) (user.Repository, error) {
	if _, err := db.Exec(directorySchema); err != nil {
		return nil, errors.Wrap(err, "ensuring directory table")
	}
	return &directoryRepository{db: db}, nil
}

// LoadDirectory reads the full snapshot. An empty or unreadable table
// yields a deep copy of the built-in sample set.
func (repo *directoryRepository) LoadDirectory() (user.Directory, error) {
	var rows []struct {
		Role string `db:"role"`
		Doc  []byte `db:"doc"`
	}
	if err := repo.db.Select(&rows, `SELECT role, doc FROM directory_users ORDER BY role, pos`); err != nil {
		return user.SeedDirectory(), nil
	}
	if len(rows) == 0 {
		return user.SeedDirectory(), nil
	}

	var dir user.Directory
	for _, row := range rows {
		var usr user.User
		if err := json.Unmarshal(row.Doc, &usr); err != nil {
			return user.SeedDirectory(), nil
		}
		part := dir.Partition(row.Role)
		*part = append(*part, usr)
	}
	return dir, nil
}

func (repo *directoryRepository) SaveDirectory(dir user.Directory) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.Exec(`DELETE FROM directory_users`); err != nil {
		return errors.Wrap(err, "clearing directory")
	}

	for _, role := range user.AllRoles {
		for pos, usr := range *dir.Partition(role) {
			doc, err := json.Marshal(usr)
			if err != nil {
				return errors.Wrap(err, "marshalling user")
			}
			if _, err = tx.Exec(
				`INSERT INTO directory_users (id, role, pos, doc) VALUES ($1, $2, $3, $4)`,
				usr.ID, role, pos, doc,
			); err != nil {
				return errors.Wrap(err, "inserting user")
			}
		}
	}
	return errors.Wrap(tx.Commit(), "committing directory")
}
