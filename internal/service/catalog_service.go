package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
)

type CatalogGroup struct {
	Category model.Category           `json:"category"`
	Items    []model.TemplateGiftItem `json:"items"`
}

// CatalogService serves the static gift-suggestion catalog, grouped by
// category. Seeding happens out of band.
type CatalogService interface {
	ListGrouped(ctx context.Context) ([]CatalogGroup, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListGrouped(ctx context.Context) ([]CatalogGroup, error) {
	items, err := s.catalogRepo.ListTemplateItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load template items: %w", err)
	}

	grouped := make(map[uuid.UUID]*CatalogGroup)
	for _, item := range items {
		group, ok := grouped[item.CategoryID]
		if !ok {
			group = &CatalogGroup{Category: item.Category}
			grouped[item.CategoryID] = group
		}
		group.Items = append(group.Items, item)
	}

	groups := make([]CatalogGroup, 0, len(grouped))
	for _, g := range grouped {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Category.Name) < strings.ToLower(groups[j].Category.Name)
	})
	return groups, nil
}

var _ CatalogService = (*catalogService)(nil)
