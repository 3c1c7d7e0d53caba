package user

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/auth"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It maps to a DATE column
// and serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so Date can hold a DATE column value.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{v.UTC().Truncate(24 * time.Hour)}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// User maps to the users table. Doctor-only columns are nullable and stay nil
// for patients. The password hash never serializes.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FullName       string    `db:"full_name" json:"full_name"`
	Phone          string    `db:"phone" json:"phone"`
	Role           auth.Role `db:"role" json:"role"`
	DateOfBirth    Date      `db:"date_of_birth" json:"date_of_birth"`
	Gender         string    `db:"gender" json:"gender"`
	Address        *string   `db:"address" json:"address,omitempty"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	Experience     *int      `db:"experience" json:"experience,omitempty"`
	Rating         *float64  `db:"rating" json:"rating,omitempty"`
	Available      bool      `db:"available" json:"available"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the caller-editable profile fields.
type ProfileUpdate struct {
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	Address     *string `json:"address"`
}
