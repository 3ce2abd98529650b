package controller

import (
	"pricebook-be/internal/dto"
	"pricebook-be/internal/pkg/serverutils"
	"pricebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGroupController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	ListItems(ctx *fiber.Ctx) error
}

type groupController struct {
	service service.IGroupService
}

func NewGroupController(service service.IGroupService) IGroupController {
	return &groupController{service: service}
}

func (c *groupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/group/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("/items", c.AddItem)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Rename)
	h.Delete("/:id", c.Delete)
	h.Get("/:id/items", c.ListItems)
	h.Delete("/:id/items/:itemId", c.RemoveItem)
}

func (c *groupController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *groupController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *groupController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *groupController) Rename(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RenameGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Rename(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *groupController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Group deleted"})
}

func (c *groupController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddGroupItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.AddItem(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Item added to group"})
}

func (c *groupController) RemoveItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	itemId := ctx.Params("itemId")

	if err := c.service.RemoveItem(ctx.Context(), id, itemId); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Item removed from group"})
}

func (c *groupController) ListItems(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	ids, err := c.service.ListItems(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(ids)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid group id")
	}
	return id, nil
}
