package services

import (
	"fmt"
	"log"

	"kudos/internal/models"
	"kudos/internal/repositories"
)

// EventPublisher publishes kudo lifecycle events to a message broker.
type EventPublisher interface {
	PublishKudoCreated(event map[string]interface{}) error
}

// KudoService handles business logic related to kudos.
type KudoService struct {
	kudoRepo  repositories.KudoRepository
	publisher EventPublisher // may be nil when no broker is configured
}

// NewKudoService creates a new KudoService.
func NewKudoService(kudoRepo repositories.KudoRepository, publisher EventPublisher) *KudoService {
	return &KudoService{
		kudoRepo:  kudoRepo,
		publisher: publisher,
	}
}

// SendKudo creates a kudo and its style as a single atomic creation.
// A user cannot send a kudo to themselves.
func (s *KudoService) SendKudo(message, authorID, recipientID string, style models.KudoStyle) (*models.Kudo, error) {
	if authorID == recipientID {
		return nil, fmt.Errorf("cannot send a kudo to yourself")
	}

	kudo := &models.Kudo{
		Message:     message,
		AuthorID:    authorID,
		RecipientID: recipientID,
		Style:       style,
	}

	if err := s.kudoRepo.Create(kudo); err != nil {
		return nil, fmt.Errorf("failed to create kudo: %w", err)
	}

	// Notify downstream consumers. Publishing is best-effort: a broker
	// failure must not fail a kudo that is already persisted.
	if s.publisher != nil {
		event := map[string]interface{}{
			"kudoID":      kudo.ID,
			"authorID":    kudo.AuthorID,
			"recipientID": kudo.RecipientID,
			"emoji":       kudo.Style.Emoji,
		}
		if err := s.publisher.PublishKudoCreated(event); err != nil {
			log.Printf("Failed to publish kudo.created event: %v", err)
		}
	}

	return kudo, nil
}

// GetFilteredKudos retrieves the team feed, optionally sorted and filtered.
func (s *KudoService) GetFilteredKudos(sort models.KudoSort, filter string) ([]models.Kudo, error) {
	return s.kudoRepo.GetFiltered(sort, filter)
}

// GetRecentKudos retrieves kudos most recent first for the sidebar feed.
func (s *KudoService) GetRecentKudos() ([]models.Kudo, error) {
	return s.kudoRepo.GetRecent()
}
