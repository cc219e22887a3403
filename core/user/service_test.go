package user

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// in-memory repositories

type memRepo struct {
	dir       Directory
	saveCount int
}

func newMemRepo() *memRepo { return &memRepo{dir: SeedDirectory()} }

func (r *memRepo) LoadDirectory() (Directory, error) { return r.dir.Clone(), nil }
func (r *memRepo) SaveDirectory(dir Directory) error {
	r.dir = dir.Clone()
	r.saveCount++
	return nil
}

type memSessions struct {
	usr *User
}

func (r *memSessions) GetSession() (User, bool) {
	if r.usr == nil {
		return User{}, false
	}
	return *r.usr, true
}
func (r *memSessions) SetSession(usr User) error { r.usr = &usr; return nil }
func (r *memSessions) ClearSession() error       { r.usr = nil; return nil }

// flaky variants for exercising persistence failures

type flakyRepo struct {
	*memRepo
	failSave bool
}

func (r *flakyRepo) SaveDirectory(dir Directory) error {
	if r.failSave {
		return errors.New("disk full")
	}
	return r.memRepo.SaveDirectory(dir)
}

type flakySessions struct {
	memSessions
	failSet bool
}

func (r *flakySessions) SetSession(usr User) error {
	if r.failSet {
		return errors.New("disk full")
	}
	return r.memSessions.SetSession(usr)
}

const demoPwd = "demo123"

func newTestService(t *testing.T) (*Service, *memRepo, *memSessions) {
	t.Helper()
	repo, sessions := newMemRepo(), &memSessions{}
	svc, err := NewService(repo, sessions, demoPwd)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc, repo, sessions
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name    string
		cr      Credentials
		wantID  int64
		wantErr error
	}{
		{
			name:   "known applicant",
			cr:     Credentials{Role: RoleApplicant, Email: "ama.boateng@example.com", Password: demoPwd},
			wantID: 1718000000001,
		},
		{
			name:   "email lookup is case-insensitive",
			cr:     Credentials{Role: RoleApplicant, Email: "AMA.BOATENG@Example.COM", Password: demoPwd},
			wantID: 1718000000001,
		},
		{
			name:   "admin partition",
			cr:     Credentials{Role: RoleAdmin, Email: "akosua.osei@uyznfoundation.org", Password: demoPwd},
			wantID: 1718000000003,
		},
		{
			name:    "wrong password, known email",
			cr:      Credentials{Role: RoleApplicant, Email: "ama.boateng@example.com", Password: "nope"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "wrong password, unknown email",
			cr:      Credentials{Role: RoleApplicant, Email: "ghost@example.com", Password: "nope"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			cr:      Credentials{Role: RoleApplicant, Email: "ghost@example.com", Password: demoPwd},
			wantErr: ErrNotFound,
		},
		{
			name:    "right email, wrong role partition",
			cr:      Credentials{Role: RolePartner, Email: "ama.boateng@example.com", Password: demoPwd},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)

			usr, err := svc.Login(tt.cr)
			if err != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if _, ok := svc.Current(); ok {
					t.Error("Login() failed but a session was started")
				}
				return
			}
			if usr.ID != tt.wantID {
				t.Errorf("Login() ID = %d, want %d", usr.ID, tt.wantID)
			}
			cur, ok := svc.Current()
			if !ok || cur.ID != tt.wantID {
				t.Errorf("Current() = (%v, %t), want session for ID %d", cur, ok, tt.wantID)
			}
		})
	}
}

func TestService_Login_replacesSession(t *testing.T) {
	svc, _, sessions := newTestService(t)

	if _, err := svc.Login(Credentials{Role: RoleApplicant, Email: "ama.boateng@example.com", Password: demoPwd}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := svc.Login(Credentials{Role: RoleAdmin, Email: "akosua.osei@uyznfoundation.org", Password: demoPwd}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	cur, ok := svc.Current()
	if !ok || cur.Role != RoleAdmin {
		t.Errorf("Current() = (%v, %t), want the admin session", cur, ok)
	}
	if sessions.usr == nil || sessions.usr.Role != RoleAdmin {
		t.Error("persisted session was not replaced")
	}
}

func TestService_Signup(t *testing.T) {
	svc, repo, _ := newTestService(t)

	usr, err := svc.Signup(NewUser{Role: RoleApplicant, Name: "Yaw Owusu", Email: "yaw.owusu@example.com"})
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}
	if usr.ID <= 1718000000004 {
		t.Errorf("Signup() ID = %d, want a fresh timestamp ID", usr.ID)
	}
	if usr.Applicant == nil || usr.Applicant.Status != "New" {
		t.Errorf("Signup() profile = %+v, want default applicant profile", usr.Applicant)
	}
	if cur, ok := svc.Current(); !ok || cur.ID != usr.ID {
		t.Error("Signup() did not start a session for the new account")
	}
	if repo.saveCount != 1 {
		t.Errorf("Signup() persisted %d times, want 1", repo.saveCount)
	}
	if got := len(repo.dir.Applicants); got != 3 {
		t.Errorf("persisted applicants = %d, want 3", got)
	}
}

func TestService_Signup_duplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	// same role partition: rejected
	_, err := svc.Signup(NewUser{Role: RoleApplicant, Name: "Ama Again", Email: "ama.boateng@example.com"})
	if err != ErrEmailExists {
		t.Fatalf("Signup() error = %v, want %v", err, ErrEmailExists)
	}

	// same email under another role: allowed, partitions are independent
	if _, err = svc.Signup(NewUser{Role: RolePartner, Name: "Ama Boateng", Email: "ama.boateng@example.com"}); err != nil {
		t.Fatalf("Signup() across partitions failed: %v", err)
	}
}

func TestService_Create(t *testing.T) {
	svc, repo, sessions := newTestService(t)

	usr, err := svc.Create(NewUser{Role: RoleAdmin, Name: "Esi Dadzie", Email: "esi.dadzie@uyznfoundation.org"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if usr.Admin == nil || usr.Admin.Position != "Staff" {
		t.Errorf("Create() profile = %+v, want default admin profile", usr.Admin)
	}
	if _, ok := svc.Current(); ok {
		t.Error("Create() started a session")
	}
	if sessions.usr != nil {
		t.Error("Create() persisted a session")
	}
	if got := len(repo.dir.Admins); got != 2 {
		t.Errorf("persisted admins = %d, want 2", got)
	}
}

func TestService_Create_keepsSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Login(Credentials{Role: RoleApplicant, Email: "ama.boateng@example.com", Password: demoPwd}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := svc.Create(NewUser{Role: RolePartner, Name: "New Partner", Email: "new@partner.com"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	cur, ok := svc.Current()
	if !ok || cur.ID != 1718000000001 {
		t.Errorf("Current() = (%v, %t), want Ama's session intact", cur, ok)
	}
}

func TestService_Signup_saveFailureRollsBack(t *testing.T) {
	repo := &flakyRepo{memRepo: newMemRepo()}
	svc, err := NewService(repo, &memSessions{}, demoPwd)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}

	nu := NewUser{Role: RoleApplicant, Name: "Yaw Owusu", Email: "yaw.owusu@example.com"}

	repo.failSave = true
	if _, err = svc.Signup(nu); err == nil {
		t.Fatal("Signup() succeeded despite the save failure")
	}
	if got := svc.Directory().Len(); got != 4 {
		t.Errorf("Directory().Len() = %d after failed Signup(), want 4", got)
	}
	if _, ok := svc.Current(); ok {
		t.Error("failed Signup() left a session behind")
	}

	// nothing was persisted, so a retry must not report a duplicate
	repo.failSave = false
	if _, err = svc.Signup(nu); err != nil {
		t.Fatalf("Signup() retry failed: %v", err)
	}
}

func TestService_Login_sessionSaveFailure(t *testing.T) {
	sessions := &flakySessions{failSet: true}
	svc, err := NewService(newMemRepo(), sessions, demoPwd)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}

	if _, err = svc.Login(Credentials{Role: RoleApplicant, Email: "ama.boateng@example.com", Password: demoPwd}); err == nil {
		t.Fatal("Login() succeeded despite the session save failure")
	}
	if _, ok := svc.Current(); ok {
		t.Error("failed Login() left the service signed in")
	}
}

func TestService_signupThenLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	usr, err := svc.Signup(NewUser{Role: RolePartner, Name: "ABSA Bank", Email: "csr@absa.com.gh"})
	if err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}
	if err = svc.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	got, err := svc.Login(Credentials{Role: RolePartner, Email: "CSR@Absa.COM.GH", Password: demoPwd})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if got.ID != usr.ID {
		t.Errorf("Login() ID = %d, want the signed-up record %d", got.ID, usr.ID)
	}
}

func TestService_Signup_monotonicIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	// freeze the clock; successive IDs must still differ
	now := time.Now()
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	var last int64
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		usr, err := svc.Signup(NewUser{Role: RoleApplicant, Name: "U", Email: email})
		if err != nil {
			t.Fatalf("Signup() #%d failed: %v", i, err)
		}
		if usr.ID <= last {
			t.Errorf("Signup() #%d ID = %d, want > %d", i, usr.ID, last)
		}
		last = usr.ID
	}
}

func TestService_Logout(t *testing.T) {
	svc, _, sessions := newTestService(t)

	if _, err := svc.Login(Credentials{Role: RoleApplicant, Email: "kofi.mensah@example.com", Password: demoPwd}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if _, ok := svc.Current(); ok {
		t.Error("Current() still reports a session after Logout()")
	}
	if sessions.usr != nil {
		t.Error("persisted session was not cleared")
	}

	// logging out while anonymous is a no-op
	if err := svc.Logout(); err != nil {
		t.Errorf("Logout() while anonymous failed: %v", err)
	}
}

func TestService_sessionRestore(t *testing.T) {
	repo, sessions := newMemRepo(), &memSessions{}
	svc, err := NewService(repo, sessions, demoPwd)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	if _, err = svc.Login(Credentials{Role: RolePartner, Email: "efua.nyarko@mtnfoundation.com", Password: demoPwd}); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	// a new service over the same stores picks the session back up
	svc2, err := NewService(repo, sessions, demoPwd)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	cur, ok := svc2.Current()
	if !ok || cur.ID != 1718000000004 {
		t.Errorf("Current() = (%v, %t), want the restored partner session", cur, ok)
	}
}

func TestService_Reset(t *testing.T) {
	svc, repo, _ := newTestService(t)

	if _, err := svc.Signup(NewUser{Role: RoleAdmin, Name: "Extra", Email: "extra@uyznfoundation.org"}); err != nil {
		t.Fatalf("Signup() failed: %v", err)
	}
	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := svc.Directory().Len(); got != 4 {
		t.Errorf("Directory().Len() = %d, want the 4 sample accounts", got)
	}
	if got := repo.dir.Len(); got != 4 {
		t.Errorf("persisted directory Len() = %d, want 4", got)
	}
}

func TestSeedDirectory_isolated(t *testing.T) {
	dir := SeedDirectory()
	dir.Applicants[0].Name = "Mutated"
	dir.Admins[0].Admin.Permissions[0] = "mutated"

	fresh := SeedDirectory()
	if fresh.Applicants[0].Name != "Ama Boateng" {
		t.Error("mutating a seeded copy leaked into the sample set")
	}
	if fresh.Admins[0].Admin.Permissions[0] != "review" {
		t.Error("mutating a seeded profile slice leaked into the sample set")
	}
}

func TestDirectory_FindByEmail(t *testing.T) {
	dir := SeedDirectory()

	usr, ok := dir.FindByEmail(RoleApplicant, strings.ToUpper("kofi.mensah@example.com"))
	if !ok || usr.ID != 1718000000002 {
		t.Errorf("FindByEmail() = (%v, %t), want Kofi's record", usr, ok)
	}
	if _, ok = dir.FindByEmail(RoleAdmin, "kofi.mensah@example.com"); ok {
		t.Error("FindByEmail() found an applicant email in the admin partition")
	}
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newTestService(t)

	usr, err := svc.GetByID(1718000000003)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !usr.IsAdmin() {
		t.Errorf("GetByID() role = %s, want admin", usr.Role)
	}
	if _, err = svc.GetByID(42); err != ErrNotFound {
		t.Errorf("GetByID() error = %v, want %v", err, ErrNotFound)
	}
}
