package domain

import (
	"errors"
	"time"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// Member is a loyalty-program record. Orders hold it as a borrowed
// reference, so a renewal done elsewhere is visible to an open cart.
type Member struct {
	ID         string
	Name       string
	Phone      string
	BirthDate  time.Time
	ExpireDate time.Time
	Active     bool
}

// IsBirthday reports whether the given instant falls on the member's
// birthday, by month and day. A February 29 birth date only matches in
// leap years.
func (m *Member) IsBirthday(at time.Time) bool {
	if m.BirthDate.IsZero() {
		return false
	}
	return at.Month() == m.BirthDate.Month() && at.Day() == m.BirthDate.Day()
}

// IsExpired reports whether the given instant is strictly after the
// expiration date, comparing calendar days.
func (m *Member) IsExpired(at time.Time) bool {
	if m.ExpireDate.IsZero() {
		return false
	}
	y1, mo1, d1 := at.Date()
	y2, mo2, d2 := m.ExpireDate.Date()
	day := time.Date(y1, mo1, d1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(y2, mo2, d2, 0, 0, 0, 0, time.UTC)
	return day.After(expiry)
}
