package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Danik911/Boruto-server/internal/models"
)

var ErrPageNotFound = errors.New("page not found")

type HeroRepository interface {
	GetPage(ctx context.Context, page int) ([]models.Hero, error)
	GetAll(ctx context.Context) ([]models.Hero, error)
	TotalPages() int
}

type pageRange struct {
	start, end int
}

// InMemoryHeroRepository keeps the catalog in a single slice and the page
// boundaries as index ranges into it. Nothing is written after construction,
// so reads need no locking.
type InMemoryHeroRepository struct {
	heroes []models.Hero
	pages  []pageRange
}

// NewInMemoryHeroRepository splits heroes into pageCount contiguous pages.
// Page sizes differ by at most one and every hero lands on exactly one page.
func NewInMemoryHeroRepository(heroes []models.Hero, pageCount int) (*InMemoryHeroRepository, error) {
	if pageCount < 1 {
		return nil, fmt.Errorf("page count must be positive, got %d", pageCount)
	}
	if len(heroes) < pageCount {
		return nil, fmt.Errorf("cannot split %d heroes into %d pages", len(heroes), pageCount)
	}

	catalog := make([]models.Hero, len(heroes))
	copy(catalog, heroes)

	pages := make([]pageRange, pageCount)
	for i := 0; i < pageCount; i++ {
		pages[i] = pageRange{
			start: i * len(catalog) / pageCount,
			end:   (i + 1) * len(catalog) / pageCount,
		}
	}
	return &InMemoryHeroRepository{heroes: catalog, pages: pages}, nil
}

func NewDefaultHeroRepository() *InMemoryHeroRepository {
	repo, err := NewInMemoryHeroRepository(BorutoHeroes, CatalogPages)
	if err != nil {
		panic(err)
	}
	return repo
}

func (m *InMemoryHeroRepository) GetPage(ctx context.Context, page int) ([]models.Hero, error) {
	if page < 1 || page > len(m.pages) {
		return nil, fmt.Errorf("failed to get page %d: %w", page, ErrPageNotFound)
	}
	r := m.pages[page-1]
	return clone(m.heroes[r.start:r.end]), nil
}

func (m *InMemoryHeroRepository) GetAll(ctx context.Context) ([]models.Hero, error) {
	return clone(m.heroes), nil
}

func (m *InMemoryHeroRepository) TotalPages() int {
	return len(m.pages)
}

func clone(heroes []models.Hero) []models.Hero {
	result := make([]models.Hero, len(heroes))
	copy(result, heroes)
	return result
}
