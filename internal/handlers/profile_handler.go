package handlers

import (
	"log"

	"kudos/internal/models"
	"kudos/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the profile settings loader and action.
type ProfileHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService *services.UserService, authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the profile settings routes.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/home/profile", h.HandleShowProfile)
	router.Post("/home/profile", h.HandleUpdateProfile)
}

// ProfileForm represents the profile settings submission.
type ProfileForm struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required"`
	LastName   string `json:"lastName" form:"lastName" validate:"required"`
	Department string `json:"department" form:"department" validate:"required,oneof=MARKETING SALES ENGINEERING HR"`
}

// HandleShowProfile loads the current user's profile settings.
func (h *ProfileHandler) HandleShowProfile(c *fiber.Ctx) error {
	user := h.authService.GetUser(c.Cookies(services.SessionCookieName))

	return c.JSON(fiber.Map{
		"user":        user,
		"departments": models.Departments,
	})
}

// HandleUpdateProfile validates and applies a profile update. Validation
// failures answer with per-field errors and the submitted values for
// re-display; success redirects to the home feed.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var form ProfileForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing profile form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
			"fields":  form,
		})
	}

	if err := h.userService.UpdateProfile(userID, form.FirstName, form.LastName, form.Department); err != nil {
		log.Printf("Error updating profile for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
		})
	}

	return c.Redirect("/home", fiber.StatusFound)
}
