package handlers

import (
	"log"

	"kudos/internal/models"
	"kudos/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// KudoHandler serves the send-kudo modal loader and action.
type KudoHandler struct {
	userService *services.UserService
	kudoService *services.KudoService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewKudoHandler creates a new KudoHandler.
func NewKudoHandler(userService *services.UserService, kudoService *services.KudoService, authService *services.AuthService) *KudoHandler {
	return &KudoHandler{
		userService: userService,
		kudoService: kudoService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the send-kudo modal routes.
func (h *KudoHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/home/kudo/:userId", h.HandleShowKudo)
	router.Post("/home/kudo/:userId", h.HandleSendKudo)
}

// KudoForm represents the send-kudo submission.
type KudoForm struct {
	Message          string `json:"message" form:"message" validate:"required"`
	BackgroundColour string `json:"backgroundColour" form:"backgroundColour" validate:"required,oneof=RED GREEN YELLOW BLUE WHITE"`
	TextColour       string `json:"textColour" form:"textColour" validate:"required,oneof=RED GREEN YELLOW BLUE WHITE"`
	Emoji            string `json:"emoji" form:"emoji" validate:"required,oneof=THUMBSUP PARTY HANDSUP"`
	RecipientID      string `json:"recipientId" form:"recipientId" validate:"required"`
}

// HandleShowKudo loads the modal data: the recipient and the current user.
// An unknown recipient sends the browser back to the home feed.
func (h *KudoHandler) HandleShowKudo(c *fiber.Ctx) error {
	recipient, err := h.userService.GetUserByID(c.Params("userId"))
	if err != nil {
		return c.Redirect("/home", fiber.StatusFound)
	}

	user := h.authService.GetUser(c.Cookies(services.SessionCookieName))

	return c.JSON(fiber.Map{
		"recipient": recipient,
		"user":      user,
	})
}

// HandleSendKudo validates the submitted form and creates the kudo, then
// redirects back to the home feed.
func (h *KudoHandler) HandleSendKudo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var form KudoForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing kudo form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid Form Data",
		})
	}

	if form.RecipientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No recipient found...",
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid Form Data",
			"errors": validationErrorMessages(err),
		})
	}

	style := models.KudoStyle{
		BackgroundColour: form.BackgroundColour,
		TextColour:       form.TextColour,
		Emoji:            form.Emoji,
	}

	if _, err := h.kudoService.SendKudo(form.Message, userID, form.RecipientID, style); err != nil {
		log.Printf("Error sending kudo from %s to %s: %v", userID, form.RecipientID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Redirect("/home", fiber.StatusFound)
}
