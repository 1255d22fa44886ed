package handlers

import (
	"log"

	"kudos/internal/models"
	"kudos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the home feed loader.
type HomeHandler struct {
	userService *services.UserService
	kudoService *services.KudoService
	authService *services.AuthService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(userService *services.UserService, kudoService *services.KudoService, authService *services.AuthService) *HomeHandler {
	return &HomeHandler{
		userService: userService,
		kudoService: kudoService,
		authService: authService,
	}
}

// RegisterRoutes registers the home feed route.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/home", h.HandleHome)
}

// HandleHome loads the home feed: colleagues, the team-wide kudo feed
// (honoring the sort and filter query parameters), the recent sidebar feed,
// and the current user.
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	user := h.authService.GetUser(c.Cookies(services.SessionCookieName))

	sort := models.ParseKudoSort(c.Query("sort"))
	filter := c.Query("filter")

	users, err := h.userService.GetOtherUsers(userID)
	if err != nil {
		log.Printf("Error loading users for home feed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load users",
		})
	}

	kudos, err := h.kudoService.GetFilteredKudos(sort, filter)
	if err != nil {
		log.Printf("Error loading kudos for home feed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load kudos",
		})
	}

	recentKudos, err := h.kudoService.GetRecentKudos()
	if err != nil {
		log.Printf("Error loading recent kudos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load recent kudos",
		})
	}

	return c.JSON(fiber.Map{
		"users":       users,
		"kudos":       kudos,
		"recentKudos": recentKudos,
		"user":        user,
	})
}
