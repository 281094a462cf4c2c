package order

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/orders", h.getOrders)
	admin.Put("/orders/:id/status", h.updateStatus)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(Order)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Place(*payload)
	if err != nil {
		switch err {
		case ErrEmptyItems, ErrMissingEmail, ErrBadPaymentMethod:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orderId": created.ID,
		"message": "Order placed successfully!",
	})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdateStatus(c.Params("id"), payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
