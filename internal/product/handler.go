package product

import (
	"strconv"
	"strings"

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
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Post("/products", h.createProduct)
	admin.Put("/products/:id", h.updateProduct)
	admin.Delete("/products/:id", h.deleteProduct)
}

// getProducts supports the storefront listing. Besides the category query the
// endpoint accepts the catalog filters (price range, sizes, brands, free-text
// search, inStock) and a sort key so clients can browse server-side.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	criteria := Criteria{
		Category:    c.Query("category"),
		Search:      c.Query("q"),
		InStockOnly: c.Query("inStock") == "true",
	}
	if v, err := strconv.Atoi(c.Query("minPrice")); err == nil {
		criteria.MinPrice = v
	}
	if v, err := strconv.Atoi(c.Query("maxPrice")); err == nil {
		criteria.MaxPrice = v
	}
	if sizes := c.Query("sizes"); sizes != "" {
		criteria.Sizes = strings.Split(sizes, ",")
	}
	if brands := c.Query("brands"); brands != "" {
		criteria.Brands = strings.Split(brands, ",")
	}

	return c.JSON(h.service.Browse(criteria, c.Query("sort", SortNewest)))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
