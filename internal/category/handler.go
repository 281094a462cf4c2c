package category

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.getCategories)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/categories", h.getAllCategories)
	admin.Post("/categories", h.createCategory)
	admin.Put("/categories/:id", h.updateCategory)
	admin.Delete("/categories/:id", h.deleteCategory)
}

// getCategories backs the storefront navigation, so inactive categories are
// hidden. The admin listing shows everything.
func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListActive())
}

func (h *Handler) getAllCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*cat)
	if err != nil {
		if err == ErrNameExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Category name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category id"})
	}

	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *cat)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		case ErrNameExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Category name already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category id"})
	}

	if err := h.service.Delete(id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		case ErrInUse:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Category is still referenced by products"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
