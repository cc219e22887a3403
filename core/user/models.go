package user

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/uyznfoundation/portal/core"
)

// Roles
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
	RolePartner   = "partner"
)

var (
	AllRoles = []string{RoleApplicant, RoleAdmin, RolePartner}

	Roles = []Role{
		{Name: "Applicant", Value: RoleApplicant},
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Partner", Value: RolePartner},
	}
)

func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Role-specific profiles. A User carries exactly one of these,
// selected by its Role tag at construction time.
type (
	ApplicantProfile struct {
		Program string  `json:"program"`
		Region  string  `json:"region"`
		GPA     float64 `json:"gpa"`
		Status  string  `json:"status"`
	}

	AdminProfile struct {
		Position    string   `json:"position"`
		Permissions []string `json:"permissions"`
	}

	PartnerProfile struct {
		FocusArea string   `json:"focusArea"`
		Access    []string `json:"access"`
	}
)

type User struct {
	ID    int64  `json:"id"` // millisecond timestamp at creation; unique & monotonic
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	Applicant *ApplicantProfile `json:"applicant,omitempty"`
	Admin     *AdminProfile     `json:"admin,omitempty"`
	Partner   *PartnerProfile   `json:"partner,omitempty"`
}

func (u *User) IsApplicant() bool { return u.Role == RoleApplicant }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }
func (u *User) IsPartner() bool   { return u.Role == RolePartner }

// PortalPath is the role-specific landing location after login/signup.
func (u *User) PortalPath() string {
	switch u.Role {
	case RoleAdmin:
		return "/portal/admin"
	case RolePartner:
		return "/portal/partner"
	default:
		return "/portal/applicant"
	}
}

func (u User) clone() User {
	if u.Applicant != nil {
		p := *u.Applicant
		u.Applicant = &p
	}
	if u.Admin != nil {
		p := *u.Admin
		p.Permissions = append([]string(nil), p.Permissions...)
		u.Admin = &p
	}
	if u.Partner != nil {
		p := *u.Partner
		p.Access = append([]string(nil), p.Access...)
		u.Partner = &p
	}
	return u
}

// defaultProfile attaches the default role-specific attribute set for a
// freshly signed-up user.
func (u *User) defaultProfile() {
	switch u.Role {
	case RoleAdmin:
		u.Admin = &AdminProfile{Position: "Staff", Permissions: []string{}}
	case RolePartner:
		u.Partner = &PartnerProfile{FocusArea: "", Access: []string{}}
	default:
		u.Applicant = &ApplicantProfile{Status: "New"}
	}
}

// Directory is the persisted collection of all known user records,
// partitioned by role. It is the sole source of truth for valid logins.
type Directory struct {
	Applicants []User `json:"applicants"`
	Admins     []User `json:"admins"`
	Partners   []User `json:"partners"`
}

// Partition returns a pointer to the role's record sequence.
func (d *Directory) Partition(role string) *[]User {
	switch role {
	case RoleAdmin:
		return &d.Admins
	case RolePartner:
		return &d.Partners
	default:
		return &d.Applicants
	}
}

// FindByEmail looks `email` up (case-insensitive) within the role partition.
func (d *Directory) FindByEmail(role, email string) (User, bool) {
	email = strings.ToLower(email)
	for _, usr := range *d.Partition(role) {
		if strings.ToLower(usr.Email) == email {
			return usr.clone(), true
		}
	}
	return User{}, false
}

// Clone returns a deep copy; mutating it does not affect the receiver.
func (d Directory) Clone() Directory {
	cp := Directory{
		Applicants: make([]User, 0, len(d.Applicants)),
		Admins:     make([]User, 0, len(d.Admins)),
		Partners:   make([]User, 0, len(d.Partners)),
	}
	for _, u := range d.Applicants {
		cp.Applicants = append(cp.Applicants, u.clone())
	}
	for _, u := range d.Admins {
		cp.Admins = append(cp.Admins, u.clone())
	}
	for _, u := range d.Partners {
		cp.Partners = append(cp.Partners, u.clone())
	}
	return cp
}

func (d Directory) Len() int {
	return len(d.Applicants) + len(d.Admins) + len(d.Partners)
}

// Flash messages surfaced to the rendering layer.
const (
	FlashLoginRequired  = "Please log in to continue."
	FlashNoPortalAccess = "You don’t have access to that portal."
)

func WelcomeFlash(role string) string { return fmt.Sprintf("Welcome, %s!", role) }
func SignupFlash(role string) string  { return fmt.Sprintf("Signed up as %s", role) }

// Credentials is the login payload. The password is checked against the
// single fixed demo value, not a per-user secret.
type Credentials struct {
	Role     string `json:"role" validate:"required,role"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (cr *Credentials) Validate(validate *validator.Validate) error {
	cr.Role = core.CleanString(cr.Role, true /* lower */)
	cr.Email = core.CleanString(cr.Email, true /* lower */)
	return validate.Struct(cr)
}

// NewUser contains information needed to sign a new User up.
type NewUser struct {
	Role  string `json:"role" validate:"required,role"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}
