package domain

import (
	"errors"
	"strconv"
	"strings"
)

// PhoneDigits is the exact length of a user's phone number.
const PhoneDigits = 8

var (
	ErrEmptyName    = errors.New("user name is required")
	ErrInvalidPhone = errors.New("phone must contain exactly 8 digits")
)

// User is a restaurant customer.
type User struct {
	ID    int64
	Name  string
	Phone int64
}

// NewUser builds a user ensuring the name and phone invariants.
func NewUser(id int64, name string, phone int64) (*User, error) {
	user := &User{ID: id}
	if err := user.SetName(name); err != nil {
		return nil, err
	}
	if err := user.SetPhone(phone); err != nil {
		return nil, err
	}
	return user, nil
}

// SetName trims and validates the name.
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	return nil
}

// SetPhone accepts numbers that render as exactly PhoneDigits digits.
func (u *User) SetPhone(phone int64) error {
	if phone <= 0 || len(strconv.FormatInt(phone, 10)) != PhoneDigits {
		return ErrInvalidPhone
	}
	u.Phone = phone
	return nil
}

// HasName compares names case-insensitively.
func (u *User) HasName(name string) bool {
	return strings.EqualFold(u.Name, strings.TrimSpace(name))
}

// Validate re-applies the invariants before persistence.
func (u *User) Validate() error {
	if err := u.SetName(u.Name); err != nil {
		return err
	}
	return u.SetPhone(u.Phone)
}
