package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

// Directory is the in-memory member store. A single mutex serialises
// registrations so the phone-uniqueness and id-sequence invariants hold
// even if handlers run concurrently.
type Directory struct {
	mu      sync.Mutex
	members []*domain.Member
	nextID  int
}

func NewDirectory(seed []*domain.Member) *Directory {
	return &Directory{
		members: seed,
		nextID:  len(seed) + 1,
	}
}

func (d *Directory) FindByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range d.members {
		if m.Phone == phone {
			return m, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (d *Directory) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, m := range d.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (d *Directory) Register(ctx context.Context, name, phone string, birthDate, joinDate time.Time) (*domain.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, m := range d.members {
		if m.Phone == phone {
			return nil, domain.ErrDuplicatePhone
		}
	}

	m := &domain.Member{
		ID:         fmt.Sprintf("M%04d", d.nextID),
		Name:       name,
		Phone:      phone,
		BirthDate:  birthDate,
		ExpireDate: joinDate.AddDate(1, 0, -1),
		Active:     true,
	}
	d.nextID++
	d.members = append(d.members, m)
	return m, nil
}

// Update is a no-op on the stored slice since members are shared
// references, but it validates the record is known.
func (d *Directory) Update(ctx context.Context, m *domain.Member) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.members {
		if existing.ID == m.ID {
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

func (d *Directory) ActiveMembers(ctx context.Context) ([]*domain.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var active []*domain.Member
	for _, m := range d.members {
		if m.Active {
			active = append(active, m)
		}
	}
	return active, nil
}

// Seed returns the member directory loaded at process start.
func Seed() []*domain.Member {
	return []*domain.Member{
		{
			ID:         "M0001",
			Name:       "ปาณัสม์ บุญเลา",
			Phone:      "0996061879",
			BirthDate:  time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
			ExpireDate: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			Active:     true,
		},
	}
}
