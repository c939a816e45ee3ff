package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

var ErrInvalidPhone = errors.New("phone number must be 9 or 10 digits")

type Service struct {
	log  *slog.Logger
	repo MemberRepository
	now  func() time.Time
}

func NewService(log *slog.Logger, repo MemberRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{log: log, repo: repo, now: now}
}

// Register creates a new member. The join date is today; the membership
// runs for one year, expiring the day before the anniversary.
func (s *Service) Register(ctx context.Context, name, phone string, birthDate time.Time) (*domain.Member, error) {
	phone = CleanPhone(phone)
	if len(phone) < 9 || len(phone) > 10 {
		return nil, ErrInvalidPhone
	}

	joinDate := s.now()
	m, err := s.repo.Register(ctx, strings.TrimSpace(name), phone, birthDate, joinDate)
	if err != nil {
		return nil, err
	}
	s.log.Info("member registered", "member_id", m.ID, "expires", m.ExpireDate.Format("2006-01-02"))
	return m, nil
}

// Renew extends the membership one year past its current expiration date
// and reactivates the member.
func (s *Service) Renew(ctx context.Context, phone string) (*domain.Member, error) {
	m, err := s.repo.FindByPhone(ctx, CleanPhone(phone))
	if err != nil {
		return nil, err
	}

	m.ExpireDate = m.ExpireDate.AddDate(1, 0, 0)
	m.Active = true
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("membership renewed", "member_id", m.ID, "expires", m.ExpireDate.Format("2006-01-02"))
	return m, nil
}

func (s *Service) FindByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	return s.repo.FindByPhone(ctx, CleanPhone(phone))
}

func (s *Service) ActiveMembers(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.ActiveMembers(ctx)
}

// CleanPhone strips everything but digits, matching how the register UI
// normalises input before lookup.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
