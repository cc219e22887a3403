package localstore

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/uyznfoundation/portal/core/user"
)

type sessionRepository struct {
	db *DB
}

var _ user.SessionRepository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) user.SessionRepository {
	return &sessionRepository{db: db}
}

// GetSession restores the persisted session record. Missing or
// unreadable data means Anonymous.
func (repo *sessionRepository) GetSession() (user.User, bool) {
	raw, err := ioutil.ReadFile(repo.db.path(sessionFile))
	if err != nil {
		return user.User{}, false
	}
	var usr user.User
	if err = json.Unmarshal(raw, &usr); err != nil {
		return user.User{}, false
	}
	return usr, true
}

func (repo *sessionRepository) SetSession(usr user.User) error {
	raw, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "marshalling session")
	}
	return repo.db.writeFileAtomic(sessionFile, raw)
}

// ClearSession removes the persisted session. A no-op when none exists.
func (repo *sessionRepository) ClearSession() error {
	if err := os.Remove(repo.db.path(sessionFile)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session")
	}
	return nil
}
