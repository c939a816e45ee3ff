package application

import (
	"context"

	"github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
)

type CatalogRepository interface {
	FindItemByID(ctx context.Context, id string) (domain.MenuItem, error)
	AllItems(ctx context.Context) ([]domain.MenuItem, error)
}
