package localstore

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// File names under the data dir. The directory store outlives the
// session store, which is removed on logout.
const (
	directoryFile = "uyzn_demo_users_v1.json"
	sessionFile   = "uyzn_demo_session.json"
)

// DB is a local JSON-document store. Each owning structure lives in its
// own file and is rewritten in full on every mutation. Concurrent
// processes sharing the same data dir are not coordinated: writes are
// atomic (temp file + rename) but last writer wins.
type DB struct {
	dataDir string
}

func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dataDir)
	}
	return &DB{dataDir: dataDir}, nil
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dataDir, name)
}

// writeFileAtomic replaces the named file in one rename so readers
// never observe a torn document.
func (db *DB) writeFileAtomic(name string, data []byte) error {
	tmp, err := ioutil.TempFile(db.dataDir, name+".tmp*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), db.path(name)), "replacing %s", name)
}
