package controller

import (
	"pricebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/search", c.Search)
}

func (c *catalogController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	page := ctx.QueryInt("page", 1)

	res, err := c.service.Search(ctx.Context(), query, page)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
