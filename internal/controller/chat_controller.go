package controller

import (
	"errors"

	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/pkg/serverutils"
	"fin-advisor-be/internal/service"
	"fin-advisor-be/pkg/dialogue"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, dialogue.ErrRoundLimitExceeded):
			return fiber.NewError(fiber.StatusInternalServerError, "dialogue did not terminate")
		default:
			return err
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}
