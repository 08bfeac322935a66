package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Danik911/Boruto-server/internal/metrics"
	"github.com/Danik911/Boruto-server/internal/models"
	"github.com/Danik911/Boruto-server/internal/myerrors"
	"github.com/Danik911/Boruto-server/internal/repositories"
)

type HeroService interface {
	GetPage(ctx context.Context, page int) (models.ApiResponse, error)
	GetPageWithLimit(ctx context.Context, page, limit int) (models.ApiResponse, error)
	Search(ctx context.Context, name string) (models.ApiResponse, error)
	Now() time.Time
}

type DefaultHeroService struct {
	heroRepo repositories.HeroRepository
	clock    func() time.Time
}

func NewDefaultHeroService(heroRepo repositories.HeroRepository) *DefaultHeroService {
	return &DefaultHeroService{
		heroRepo: heroRepo,
		clock:    time.Now,
	}
}

// WithClock replaces the time source used for lastUpdate.
func (d *DefaultHeroService) WithClock(clock func() time.Time) *DefaultHeroService {
	d.clock = clock
	return d
}

func (d *DefaultHeroService) Now() time.Time {
	return d.clock()
}

func (d *DefaultHeroService) GetPage(ctx context.Context, page int) (models.ApiResponse, error) {
	totalPages := d.heroRepo.TotalPages()
	if page < models.FirstPage || page > totalPages {
		metrics.PageRequests.WithLabelValues(metrics.OutcomeOutOfRange).Inc()
		return models.ApiResponse{}, myerrors.NewOutOfRangeError(totalPages)
	}

	heroes, err := d.heroRepo.GetPage(ctx, page)
	if err != nil {
		if errors.Is(err, repositories.ErrPageNotFound) {
			metrics.PageRequests.WithLabelValues(metrics.OutcomeOutOfRange).Inc()
			return models.ApiResponse{}, myerrors.NewOutOfRangeError(totalPages)
		}
		return models.ApiResponse{}, fmt.Errorf("failed to get heroes page: %w", err)
	}

	metrics.PageRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	links := models.NewPageLinks(page, totalPages)
	return models.NewSuccessResponse(heroes, links.Prev, links.Next, d.clock()), nil
}

// GetPageWithLimit pages through the whole catalog limit heroes at a time,
// ignoring the repository's own page boundaries.
func (d *DefaultHeroService) GetPageWithLimit(ctx context.Context, page, limit int) (models.ApiResponse, error) {
	if limit < 1 {
		metrics.PageRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return models.ApiResponse{}, myerrors.NewInvalidInputError()
	}

	all, err := d.heroRepo.GetAll(ctx)
	if err != nil {
		return models.ApiResponse{}, fmt.Errorf("failed to get all heroes: %w", err)
	}

	totalPages := (len(all) + limit - 1) / limit
	if page < models.FirstPage || page > totalPages {
		metrics.PageRequests.WithLabelValues(metrics.OutcomeOutOfRange).Inc()
		return models.ApiResponse{}, myerrors.NewOutOfRangeError(totalPages)
	}

	start := (page - 1) * limit
	end := min(start+limit, len(all))

	metrics.PageRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	links := models.NewPageLinks(page, totalPages)
	return models.NewSuccessResponse(all[start:end], links.Prev, links.Next, d.clock()), nil
}

// Search returns every hero whose name contains name, ignoring case.
// An empty query matches nothing.
func (d *DefaultHeroService) Search(ctx context.Context, name string) (models.ApiResponse, error) {
	if name == "" {
		metrics.SearchResults.Observe(0)
		return models.NewSuccessResponse(nil, nil, nil, d.clock()), nil
	}

	all, err := d.heroRepo.GetAll(ctx)
	if err != nil {
		return models.ApiResponse{}, fmt.Errorf("failed to search heroes: %w", err)
	}

	query := strings.ToLower(name)
	found := make([]models.Hero, 0)
	for _, hero := range all {
		if strings.Contains(strings.ToLower(hero.Name), query) {
			found = append(found, hero)
		}
	}

	metrics.SearchResults.Observe(float64(len(found)))
	return models.NewSuccessResponse(found, nil, nil, d.clock()), nil
}
