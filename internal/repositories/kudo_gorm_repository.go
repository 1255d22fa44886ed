package repositories

import (
	"fmt"
	"strings"

	"kudos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMKudoRepository is a GORM implementation of KudoRepository.
type GORMKudoRepository struct {
	db *gorm.DB
}

// NewGORMKudoRepository creates a new instance of GORMKudoRepository.
func NewGORMKudoRepository(db *gorm.DB) *GORMKudoRepository {
	return &GORMKudoRepository{
		db: db,
	}
}

// Create inserts a kudo together with its owned style. GORM writes both rows
// in one transaction, so the pair is created atomically.
func (r *GORMKudoRepository) Create(kudo *models.Kudo) error {
	if kudo.ID == "" {
		kudo.ID = uuid.New().String()
	}
	if kudo.Style.ID == "" {
		kudo.Style.ID = uuid.New().String()
	}
	kudo.Style.KudoID = kudo.ID
	if err := r.db.Create(kudo).Error; err != nil {
		return fmt.Errorf("failed to create kudo: %w", err)
	}
	return nil
}

// GetFiltered retrieves kudos with their style and author profile loaded.
// The filter matches case-insensitively against the message and the author's
// first and last name. Sorting follows the KudoSort variant; SortDefault
// leaves the ordering to the database.
func (r *GORMKudoRepository) GetFiltered(sort models.KudoSort, filter string) ([]models.Kudo, error) {
	query := r.db.Model(&models.Kudo{}).
		Select("kudos.*").
		Joins("JOIN profiles ON profiles.user_id = kudos.author_id").
		Joins("JOIN kudo_styles ON kudo_styles.kudo_id = kudos.id").
		Preload("Style").
		Preload("Author.Profile")

	if filter != "" {
		term := "%" + strings.ToLower(filter) + "%"
		query = query.Where(
			"LOWER(kudos.message) LIKE ? OR LOWER(profiles.first_name) LIKE ? OR LOWER(profiles.last_name) LIKE ?",
			term, term, term,
		)
	}

	switch sort {
	case models.SortByDate:
		query = query.Order("kudos.created_at desc")
	case models.SortBySender:
		query = query.Order("profiles.first_name asc")
	case models.SortByEmoji:
		query = query.Order("kudo_styles.emoji asc")
	}

	var kudos []models.Kudo
	if err := query.Find(&kudos).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered kudos: %w", err)
	}
	return kudos, nil
}

// GetRecent retrieves all kudos most recent first, with style and author profile loaded.
func (r *GORMKudoRepository) GetRecent() ([]models.Kudo, error) {
	var kudos []models.Kudo
	err := r.db.
		Order("created_at desc").
		Preload("Style").
		Preload("Author.Profile").
		Find(&kudos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent kudos: %w", err)
	}
	return kudos, nil
}
