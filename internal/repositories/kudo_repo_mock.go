package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"kudos/internal/models"

	"github.com/google/uuid"
)

// MockKudoRepository is an in-memory implementation of KudoRepository.
type MockKudoRepository struct {
	kudos map[string]models.Kudo
	mu    sync.RWMutex
}

// NewMockKudoRepository creates a new instance of MockKudoRepository.
func NewMockKudoRepository() *MockKudoRepository {
	return &MockKudoRepository{
		kudos: make(map[string]models.Kudo),
	}
}

// Create adds a new kudo with its style.
func (r *MockKudoRepository) Create(kudo *models.Kudo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kudo.ID == "" {
		kudo.ID = uuid.New().String()
	}
	if kudo.Style.ID == "" {
		kudo.Style.ID = uuid.New().String()
	}
	kudo.Style.KudoID = kudo.ID
	if kudo.CreatedAt.IsZero() {
		kudo.CreatedAt = time.Now()
	}
	r.kudos[kudo.ID] = *kudo
	return nil
}

// GetFiltered returns kudos matching the filter, ordered per the sort variant.
func (r *MockKudoRepository) GetFiltered(sortBy models.KudoSort, filter string) ([]models.Kudo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(filter)
	kudoList := make([]models.Kudo, 0, len(r.kudos))
	for _, k := range r.kudos {
		if term != "" &&
			!strings.Contains(strings.ToLower(k.Message), term) &&
			!strings.Contains(strings.ToLower(k.Author.Profile.FirstName), term) &&
			!strings.Contains(strings.ToLower(k.Author.Profile.LastName), term) {
			continue
		}
		kudoList = append(kudoList, k)
	}

	switch sortBy {
	case models.SortByDate:
		sort.Slice(kudoList, func(i, j int) bool {
			return kudoList[i].CreatedAt.After(kudoList[j].CreatedAt)
		})
	case models.SortBySender:
		sort.Slice(kudoList, func(i, j int) bool {
			return kudoList[i].Author.Profile.FirstName < kudoList[j].Author.Profile.FirstName
		})
	case models.SortByEmoji:
		sort.Slice(kudoList, func(i, j int) bool {
			return kudoList[i].Style.Emoji < kudoList[j].Style.Emoji
		})
	}
	return kudoList, nil
}

// GetRecent returns all kudos most recent first.
func (r *MockKudoRepository) GetRecent() ([]models.Kudo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kudoList := make([]models.Kudo, 0, len(r.kudos))
	for _, k := range r.kudos {
		kudoList = append(kudoList, k)
	}
	sort.Slice(kudoList, func(i, j int) bool {
		return kudoList[i].CreatedAt.After(kudoList[j].CreatedAt)
	})
	return kudoList, nil
}
