package controller

import (
	"errors"
	"strconv"

	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/pkg/serverutils"
	"fin-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPortfolioController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type portfolioController struct {
	service service.IPortfolioService
}

func NewPortfolioController(service service.IPortfolioService) IPortfolioController {
	return &portfolioController{service: service}
}

func (c *portfolioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/:userId/portfolio")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
}

func (c *portfolioController) Create(ctx *fiber.Ctx) error {
	userId, err := strconv.ParseInt(ctx.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.CreatePortfolioItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create portfolio item", res))
}

func (c *portfolioController) GetAll(ctx *fiber.Ctx) error {
	userId, err := strconv.ParseInt(ctx.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.service.GetAllByUser(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get portfolio", res))
}

func (c *portfolioController) Delete(ctx *fiber.Ctx) error {
	userId, err := strconv.ParseInt(ctx.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}
	itemId, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid portfolio item id")
	}

	if err := c.service.Delete(ctx.Context(), userId, itemId); err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) || errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete portfolio item", nil))
}
