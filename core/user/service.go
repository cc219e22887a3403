package user

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// errors
	ErrNotFound           = errors.New("no user found with that email for the selected role")
	ErrEmailExists        = errors.New("email already exists for this role")
	ErrInvalidCredentials = errors.New("invalid password for the demo account")

	nowFunc = time.Now // mockable
)

type (
	// Repository owns the persisted Directory. LoadDirectory never
	// reports missing or unparsable data as an error: it falls back to
	// a deep copy of the built-in sample set.
	Repository interface {
		LoadDirectory() (Directory, error)
		// SaveDirectory re-persists the whole Directory, synchronously.
		SaveDirectory(Directory) error
	}

	// SessionRepository owns the persisted Session, kept separate from
	// the Directory store.
	SessionRepository interface {
		GetSession() (User, bool)
		SetSession(User) error
		ClearSession() error
	}

	// Service manages the Directory and the current Session. The
	// Directory is loaded once at construction; every mutation is
	// re-persisted in full immediately.
	Service struct {
		repo     Repository
		sessions SessionRepository

		mu          sync.RWMutex
		dir         Directory
		session     *User
		lastID      int64
		demoPwdHash []byte
	}
)

func NewService(repo Repository, sessions SessionRepository, demoPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	dir, err := repo.LoadDirectory()
	if err != nil {
		return nil, err
	}

	svc := &Service{
		repo:        repo,
		sessions:    sessions,
		dir:         dir,
		demoPwdHash: hash,
	}

	// restore the session if one was persisted; else start Anonymous
	if usr, ok := sessions.GetSession(); ok {
		svc.session = &usr
	}
	return svc, nil
}

// Directory returns a deep copy of the in-memory Directory.
func (svc *Service) Directory() Directory {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.dir.Clone()
}

// Current returns the authenticated user, if any.
func (svc *Service) Current() (User, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.session == nil {
		return User{}, false
	}
	return svc.session.clone(), true
}

// Login authenticates against the fixed demo password, then looks the
// email up (case-insensitive) within the role partition. On success the
// found record becomes the Session and is persisted.
//
// Logging in while already authenticated silently replaces the Session.
func (svc *Service) Login(cr Credentials) (User, error) {
	if err := bcrypt.CompareHashAndPassword(svc.demoPwdHash, []byte(cr.Password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	usr, ok := svc.dir.FindByEmail(cr.Role, cr.Email)
	if !ok {
		return User{}, ErrNotFound
	}

	// persist first; the in-memory session only changes on success
	if err := svc.sessions.SetSession(usr); err != nil {
		return User{}, err
	}
	svc.session = &usr
	return usr.clone(), nil
}

// Signup appends a new record to the role partition, re-persists the
// Directory in full, then makes the new record the Session.
func (svc *Service) Signup(nu NewUser) (User, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	usr, err := svc.create(nu)
	if err != nil {
		return User{}, err
	}
	if err = svc.sessions.SetSession(usr); err != nil {
		return User{}, err
	}
	svc.session = &usr
	return usr.clone(), nil
}

// Create appends a new record to the role partition and re-persists the
// Directory in full, without touching the Session. Lets the admin CLI
// add accounts while a web session is live.
func (svc *Service) Create(nu NewUser) (User, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	usr, err := svc.create(nu)
	if err != nil {
		return User{}, err
	}
	return usr.clone(), nil
}

// create does the shared record construction and persistence. The
// appended record is rolled back if the save fails, so the in-memory
// Directory never diverges from the persisted one. Callers must hold
// svc.mu.
func (svc *Service) create(nu NewUser) (User, error) {
	if _, exists := svc.dir.FindByEmail(nu.Role, nu.Email); exists {
		return User{}, ErrEmailExists
	}

	usr := User{
		ID:    svc.nextID(),
		Name:  nu.Name,
		Email: nu.Email,
		Role:  nu.Role,
	}
	usr.defaultProfile()

	part := svc.dir.Partition(nu.Role)
	*part = append(*part, usr)
	if err := svc.repo.SaveDirectory(svc.dir); err != nil {
		*part = (*part)[:len(*part)-1]
		return User{}, err
	}
	return usr, nil
}

// Logout clears the Session. Idempotent: a no-op when Anonymous.
func (svc *Service) Logout() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.session == nil {
		return nil
	}
	svc.session = nil
	return svc.sessions.ClearSession()
}

// GetByID looks a record up across all partitions.
func (svc *Service) GetByID(id int64) (User, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	for _, part := range [][]User{svc.dir.Applicants, svc.dir.Admins, svc.dir.Partners} {
		for _, usr := range part {
			if usr.ID == id {
				return usr.clone(), nil
			}
		}
	}
	return User{}, ErrNotFound
}

// Reset discards the Directory in favour of the built-in sample set and
// persists it. The Session is left untouched.
func (svc *Service) Reset() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.dir = SeedDirectory()
	return svc.repo.SaveDirectory(svc.dir)
}

// nextID derives a unique, monotonically increasing identifier from the
// current time in milliseconds. Callers must hold svc.mu.
func (svc *Service) nextID() int64 {
	id := nowFunc().UnixNano() / int64(time.Millisecond)
	if id <= svc.lastID {
		id = svc.lastID + 1
	}
	svc.lastID = id
	return id
}
