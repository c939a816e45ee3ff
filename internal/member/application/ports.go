package application

import (
	"context"
	"time"

	"github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
)

type MemberRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	Register(ctx context.Context, name, phone string, birthDate, joinDate time.Time) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	ActiveMembers(ctx context.Context) ([]*domain.Member, error)
}
