package testutil

import (
	"encoding/json"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/uyznfoundation/portal/core/user"
	"github.com/uyznfoundation/portal/storage/localstore"
)

// DemoPassword is the fixed password every demo account shares.
const DemoPassword = "demo123"

// PrepareStore opens a throwaway local store rooted in a per-test
// temporary directory.
func PrepareStore(t *testing.T) *localstore.DB {
	t.Helper()

	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("PrepareStore() failed: %v", err)
	}
	return store
}

// NewService builds a user.Service on top of the given store.
func NewService(t *testing.T, store *localstore.DB) *user.Service {
	t.Helper()

	svc, err := user.NewService(
		localstore.NewDirectoryRepository(store),
		localstore.NewSessionRepository(store),
		DemoPassword,
	)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc
}

// CreateUser adds a fresh account without starting a session, so tests
// keep a known anonymous state.
func CreateUser(t *testing.T, svc *user.Service, role, name, email string) user.User {
	t.Helper()

	usr, err := svc.Create(user.NewUser{Role: role, Name: name, Email: email})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// JSONDiff renders a unified diff of two values' JSON forms for failure
// messages. Both sides are re-marshalled so formatting differences do
// not show up.
func JSONDiff(t *testing.T, want, got interface{}) string {
	t.Helper()

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(marshalIndent(t, want)),
		B:        difflib.SplitLines(marshalIndent(t, got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("JSONDiff() failed: %v", err)
	}
	return diff
}

func marshalIndent(t *testing.T, obj interface{}) string {
	t.Helper()

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("marshalIndent() failed: %v", err)
	}
	return string(data) + "\n"
}
