package handlers

import (
	"context"
	"log"
	"mime/multipart"

	"kudos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AvatarUploader stores an uploaded avatar and returns its public URL.
type AvatarUploader interface {
	UploadAvatar(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// AvatarHandler serves the avatar upload action.
type AvatarHandler struct {
	storage     AvatarUploader
	userService *services.UserService
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(storage AvatarUploader, userService *services.UserService) *AvatarHandler {
	return &AvatarHandler{
		storage:     storage,
		userService: userService,
	}
}

// RegisterRoutes registers the avatar upload route.
func (h *AvatarHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/avatar", h.HandleUpload)
}

// HandleUpload streams the profile picture to object storage, persists the
// resulting URL on the profile, and returns it. Only the designated multipart
// field is accepted; anything else stores nothing.
func (h *AvatarHandler) HandleUpload(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	fileHeader, err := c.FormFile(services.AvatarFieldName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No profile picture provided",
		})
	}

	imageURL, err := h.storage.UploadAvatar(c.UserContext(), fileHeader)
	if err != nil {
		log.Printf("Error uploading avatar for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not upload avatar",
		})
	}

	if err := h.userService.SetProfilePicture(userID, imageURL); err != nil {
		log.Printf("Error saving avatar URL for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save avatar",
		})
	}

	return c.JSON(fiber.Map{
		"imageUrl": imageURL,
	})
}
