package services_test

import (
	"testing"

	"kudos/internal/models"
	"kudos/internal/repositories"
	"kudos/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedUsers(t *testing.T, repo repositories.UserRepository) (self, colleagueA, colleagueB *models.User) {
	t.Helper()

	self = &models.User{
		Email:    "me@example.com",
		Password: "hashed",
		Profile:  models.Profile{FirstName: "Morgan", LastName: "Lee", Department: "ENGINEERING"},
	}
	colleagueA = &models.User{
		Email:    "ann@example.com",
		Password: "hashed",
		Profile:  models.Profile{FirstName: "Ann", LastName: "Jordan", Department: "SALES"},
	}
	colleagueB = &models.User{
		Email:    "zoe@example.com",
		Password: "hashed",
		Profile:  models.Profile{FirstName: "Zoe", LastName: "Park", Department: "HR"},
	}
	for _, u := range []*models.User{self, colleagueA, colleagueB} {
		assert.NoError(t, repo.Create(u))
	}
	return self, colleagueA, colleagueB
}

func TestUserService_GetOtherUsers(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	self, _, _ := seedUsers(t, repo)

	users, err := service.GetOtherUsers(self.ID)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	// Never contains the requesting user, ordered by first name ascending
	for _, u := range users {
		assert.NotEqual(t, self.ID, u.ID)
	}
	assert.Equal(t, "Ann", users[0].Profile.FirstName)
	assert.Equal(t, "Zoe", users[1].Profile.FirstName)
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	self, _, _ := seedUsers(t, repo)

	err := service.UpdateProfile(self.ID, "Max", "Lee", "SALES")
	assert.NoError(t, err)

	updated, err := service.GetUserByID(self.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Max", updated.Profile.FirstName)
	assert.Equal(t, "Lee", updated.Profile.LastName)
	assert.Equal(t, "SALES", updated.Profile.Department)

	// Unknown user
	err = service.UpdateProfile("missing-id", "Max", "Lee", "SALES")
	assert.Error(t, err)
}

func TestUserService_SetProfilePicture(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	service := services.NewUserService(repo)

	self, _, _ := seedUsers(t, repo)

	err := service.SetProfilePicture(self.ID, "https://bucket.s3.us-east-1.amazonaws.com/avatar.png")
	assert.NoError(t, err)

	updated, err := service.GetUserByID(self.ID)
	assert.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.us-east-1.amazonaws.com/avatar.png", updated.Profile.ProfilePicture)
}
