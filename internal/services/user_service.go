package services

import (
	"kudos/internal/models"
	"kudos/internal/repositories"
)

// UserService handles business logic related to users and their profiles.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetOtherUsers retrieves every user except selfID, ordered by first name.
func (s *UserService) GetOtherUsers(selfID string) ([]models.User, error) {
	return s.repo.GetOthers(selfID)
}

// GetUserByID retrieves a single user with their profile.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateProfile updates the name and department of a user's profile.
func (s *UserService) UpdateProfile(userID, firstName, lastName, department string) error {
	return s.repo.UpdateProfile(userID, firstName, lastName, department)
}

// SetProfilePicture stores an uploaded avatar URL on a user's profile.
func (s *UserService) SetProfilePicture(userID, url string) error {
	return s.repo.SetProfilePicture(userID, url)
}
