package repositories

import (
	"fmt"
	"sort"
	"sync"

	"kudos/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user with their profile.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s already exists", user.Email)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Profile.ID == "" {
		user.Profile.ID = uuid.New().String()
	}
	user.Profile.UserID = user.ID
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// GetOthers returns all users except selfID, ordered by profile first name ascending.
func (r *MockUserRepository) GetOthers(selfID string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID == selfID {
			continue
		}
		userList = append(userList, u)
	}
	sort.Slice(userList, func(i, j int) bool {
		return userList[i].Profile.FirstName < userList[j].Profile.FirstName
	})
	return userList, nil
}

// UpdateProfile updates the name and department fields of a user's profile.
func (r *MockUserRepository) UpdateProfile(userID, firstName, lastName, department string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("profile for user %s not found for update", userID)
	}
	user.Profile.FirstName = firstName
	user.Profile.LastName = lastName
	user.Profile.Department = department
	r.users[userID] = user
	return nil
}

// SetProfilePicture stores the avatar URL on a user's profile.
func (r *MockUserRepository) SetProfilePicture(userID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("profile for user %s not found for update", userID)
	}
	user.Profile.ProfilePicture = url
	r.users[userID] = user
	return nil
}
