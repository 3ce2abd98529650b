package service

import (
	"context"

	"pricebook-be/internal/constant"
	"pricebook-be/internal/dto"
	"pricebook-be/pkg/catalog"
	"pricebook-be/pkg/search"
)

type ICatalogService interface {
	Search(ctx context.Context, query string, page int) (*dto.SearchResponse, error)
}

type catalogService struct {
	cache   *catalog.Manager
	perPage int
}

func NewCatalogService(cache *catalog.Manager) ICatalogService {
	return &catalogService{
		cache:   cache,
		perPage: constant.SearchPageSize,
	}
}

func (s *catalogService) Search(ctx context.Context, query string, page int) (*dto.SearchResponse, error) {
	snap := s.cache.Snapshot(ctx)
	res := search.Search(snap, query, page, s.perPage)

	return &dto.SearchResponse{
		Results:    res.Results,
		Total:      res.Total,
		Page:       res.Page,
		PerPage:    res.PerPage,
		TotalPages: res.TotalPages,
	}, nil
}
