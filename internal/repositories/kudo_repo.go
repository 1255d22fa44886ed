package repositories

import "kudos/internal/models"

// KudoRepository defines the interface for kudo data access.
type KudoRepository interface {
	// Create inserts a kudo and its owned style as a single creation.
	Create(kudo *models.Kudo) error
	// GetFiltered returns kudos with author profiles and styles loaded,
	// optionally sorted and filtered. An empty filter means no filtering.
	GetFiltered(sort models.KudoSort, filter string) ([]models.Kudo, error)
	// GetRecent returns kudos most recent first.
	GetRecent() ([]models.Kudo, error)
}
