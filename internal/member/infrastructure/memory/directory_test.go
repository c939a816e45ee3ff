package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
	"github.com/tanakrit-dev/pizzashop-pos/internal/member/infrastructure/memory"
)

var (
	birthDate = time.Date(1995, time.March, 10, 0, 0, 0, 0, time.UTC)
	joinDate  = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	d := memory.NewDirectory(nil)
	ctx := context.Background()

	first, err := d.Register(ctx, "A", "0991112222", birthDate, joinDate)
	require.NoError(t, err)
	second, err := d.Register(ctx, "B", "0991113333", birthDate, joinDate)
	require.NoError(t, err)

	assert.Equal(t, "M0001", first.ID)
	assert.Equal(t, "M0002", second.ID)
}

func TestRegisterExpireDateIsOneYearMinusOneDay(t *testing.T) {
	d := memory.NewDirectory(nil)

	m, err := d.Register(context.Background(), "A", "0991112222", birthDate, joinDate)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC), m.ExpireDate)
	assert.True(t, m.Active)
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	d := memory.NewDirectory(nil)
	ctx := context.Background()

	_, err := d.Register(ctx, "A", "0991112222", birthDate, joinDate)
	require.NoError(t, err)

	_, err = d.Register(ctx, "B", "0991112222", birthDate, joinDate)
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestSeedCountsTowardIDSequence(t *testing.T) {
	d := memory.NewDirectory(memory.Seed())

	m, err := d.Register(context.Background(), "A", "0812345678", birthDate, joinDate)
	require.NoError(t, err)
	assert.Equal(t, "M0002", m.ID)
}

func TestFindByPhone(t *testing.T) {
	d := memory.NewDirectory(memory.Seed())
	ctx := context.Background()

	m, err := d.FindByPhone(ctx, "0996061879")
	require.NoError(t, err)
	assert.Equal(t, "M0001", m.ID)

	_, err = d.FindByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestActiveMembersFiltersInactive(t *testing.T) {
	d := memory.NewDirectory(nil)
	ctx := context.Background()

	a, err := d.Register(ctx, "A", "0991112222", birthDate, joinDate)
	require.NoError(t, err)
	_, err = d.Register(ctx, "B", "0991113333", birthDate, joinDate)
	require.NoError(t, err)

	a.Active = false

	active, err := d.ActiveMembers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "M0002", active[0].ID)
}
