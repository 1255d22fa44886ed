package repositories

import "kudos/internal/models"

// UserRepository defines the interface for user and profile data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetOthers(selfID string) ([]models.User, error)
	UpdateProfile(userID, firstName, lastName, department string) error
	SetProfilePicture(userID, url string) error
}
