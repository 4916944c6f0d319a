package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^\+(?:[0-9] ?){6,14}[0-9]$`)
)

// IsEmail reports whether s looks like a deliverable email address.
func IsEmail(s string) bool { return emailPattern.MatchString(s) }

// IsPhone reports whether s is an international phone number (+ prefix).
func IsPhone(s string) bool { return phonePattern.MatchString(s) }

// ValidPassword requires at least 8 characters with one digit, one uppercase
// and one lowercase letter.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var digit, upper, lower bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		}
	}
	return digit && upper && lower
}

// NewUserParams carries the raw registration input.
type NewUserParams struct {
	ID         string
	FirstName  string
	OtherNames string
	Email      string
	Password   string
	Phone      string
}

// User is a validated, immutable registration entity. Construct via NewUser.
type User struct {
	id         string
	firstName  string
	otherNames string
	email      string
	phone      string
	password   string
	salt       string
	hash       string
}

// NewUser validates the raw input and returns the entity, or a typed error
// before any I/O takes place.
func NewUser(p NewUserParams) (*User, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, errValidation("User ID is invalid")
	}

	if p.FirstName == "" {
		return nil, errRequired("First Name is required", "firstName")
	}
	if p.OtherNames == "" {
		return nil, errRequired("Other Name(s) is/are required", "otherNames")
	}
	if p.Email == "" {
		return nil, errRequired("Email Address is required", "email")
	}
	if !IsEmail(p.Email) {
		return nil, errValidation("A valid email address is required")
	}
	if p.Phone != "" && !IsPhone(p.Phone) {
		return nil, errValidation("A valid phone number is required")
	}
	if p.Password == "" {
		return nil, errRequired("Password is required", "password")
	}
	if !ValidPassword(p.Password) {
		return nil, errValidation("Password should be at least 8 characters and should contain at least one number, one uppercase letter, and one lowercase letter")
	}

	salt := secure.Salt(22)
	encrypted, err := secure.HashPassword(p.Password, salt)
	if err != nil {
		return nil, errValidation("Password could not be processed")
	}

	return &User{
		id:         id,
		firstName:  p.FirstName,
		otherNames: p.OtherNames,
		email:      p.Email,
		phone:      p.Phone,
		password:   encrypted,
		salt:       salt,
		hash:       secure.MD5(p.Email),
	}, nil
}

func (u *User) ID() string         { return u.id }
func (u *User) FirstName() string  { return u.firstName }
func (u *User) OtherNames() string { return u.otherNames }
func (u *User) Email() string      { return u.email }
func (u *User) Phone() string      { return u.phone }
func (u *User) Password() string   { return u.password }
func (u *User) Salt() string       { return u.salt }

// Hash is the duplicate-detection key: md5 of the email address.
func (u *User) Hash() string { return u.hash }

// UserDetails is the persisted identity record as read back from storage.
type UserDetails struct {
	UserID        string          `json:"user_id" bson:"user_id"`
	FirstName     string          `json:"first_name" bson:"first_name"`
	OtherNames    string          `json:"other_names" bson:"other_names"`
	Email         string          `json:"email" bson:"email"`
	Phone         string          `json:"phone,omitempty" bson:"phone,omitempty"`
	EmailVerified bool            `json:"email_verified" bson:"email_verified"`
	PhoneVerified bool            `json:"phone_verified" bson:"phone_verified"`
	Status        string          `json:"status" bson:"status"`
	Profile       *ProfileDetails `json:"profile,omitempty" bson:"profile,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" bson:"updated_at"`
}

// Credentials is the minimal projection used for password checks.
type Credentials struct {
	UserID   string `bson:"user_id"`
	Password string `bson:"password"`
	Salt     string `bson:"salt"`
}
