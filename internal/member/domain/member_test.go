package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

func TestIsBirthday(t *testing.T) {
	m := &domain.Member{
		ID:        "M0001",
		BirthDate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, m.IsBirthday(time.Date(2025, time.May, 15, 18, 30, 0, 0, time.UTC)))
	assert.False(t, m.IsBirthday(time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.IsBirthday(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestIsBirthdayZeroBirthDate(t *testing.T) {
	m := &domain.Member{ID: "M0001"}
	assert.False(t, m.IsBirthday(time.Now()))
}

func TestIsExpired(t *testing.T) {
	m := &domain.Member{
		ID:         "M0001",
		ExpireDate: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	// expiry day itself is still valid; only strictly after counts
	assert.False(t, m.IsExpired(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, m.IsExpired(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.IsExpired(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestIsExpiredZeroExpireDate(t *testing.T) {
	m := &domain.Member{ID: "M0001"}
	assert.False(t, m.IsExpired(time.Now()))
}
