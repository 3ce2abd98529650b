package controller

import (
	"pricebook-be/internal/dto"
	"pricebook-be/internal/pkg/serverutils"
	"pricebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type settingController struct {
	service service.ISettingService
}

func NewSettingController(service service.ISettingService) ISettingController {
	return &settingController{service: service}
}

func (c *settingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/setting/v1")
	h.Get("", c.Get)
	h.Post("", c.Update)
}

func (c *settingController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *settingController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Update(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Settings updated"})
}
