package repositories

import (
	"fmt"
	"kudos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user and their profile in the database.
// GORM persists the owned Profile association in the same transaction.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Profile.ID == "" {
		user.Profile.ID = uuid.New().String()
	}
	user.Profile.UserID = user.ID
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Profile").First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetOthers retrieves all users except selfID, ordered by profile first name ascending.
func (r *GORMUserRepository) GetOthers(selfID string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("users.id <> ?", selfID).
		Order("profiles.first_name asc").
		Preload("Profile").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get other users: %w", err)
	}
	return users, nil
}

// UpdateProfile updates the name and department fields of a user's profile.
func (r *GORMUserRepository) UpdateProfile(userID, firstName, lastName, department string) error {
	res := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
			"department": department,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile for user %s not found for update", userID)
	}
	return nil
}

// SetProfilePicture stores the avatar URL on a user's profile.
func (r *GORMUserRepository) SetProfilePicture(userID, url string) error {
	res := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("profile_picture", url)
	if res.Error != nil {
		return fmt.Errorf("failed to set profile picture: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile for user %s not found for update", userID)
	}
	return nil
}
