package controller

import (
	"fmt"

	"pricebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const wordMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Word(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Get("/word", c.Word)
}

func (c *exportController) Word(ctx *fiber.Ctx) error {
	res, err := c.service.GenerateWord(ctx.Context())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, wordMimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))
	return ctx.Send(res.Content)
}
