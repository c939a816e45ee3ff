package application

import (
	"context"
	"sort"
	"strings"

	"github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
)

const AllCategories = "all"

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindItemByID(ctx context.Context, id string) (domain.MenuItem, error) {
	return s.repo.FindItemByID(ctx, id)
}

// ListCategories returns the distinct category names, sorted.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	items, err := s.repo.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// ListItems filters the menu by category (exact, case-insensitive; empty or
// "all" matches everything) and by a case-insensitive substring of the name.
func (s *Service) ListItems(ctx context.Context, category, search string) ([]domain.MenuItem, error) {
	items, err := s.repo.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))

	var matched []domain.MenuItem
	for _, item := range items {
		if !matchesCategory(item, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func matchesCategory(item domain.MenuItem, category string) bool {
	if category == "" || strings.EqualFold(category, AllCategories) {
		return true
	}
	return strings.EqualFold(item.Category, category)
}
