package university

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscope/uniscope-api/catalog"
	"github.com/uniscope/uniscope-api/model"
	"github.com/uniscope/uniscope-api/utils/response"
)

// Catalog is the read-only store the handler queries. It is injected so
// tests can substitute a failing implementation; the bundled store is
// *catalog.Store.
type Catalog interface {
	ListAll() ([]model.University, error)
	GetBySlug(slug string) (model.University, error)
	Search(query string) ([]model.University, error)
}

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	store Catalog
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(store Catalog) *UniversityHandler {
	return &UniversityHandler{
		store: store,
	}
}

// ListUniversities handles GET /api/universities. The full catalog is
// returned as a bare JSON array; filtering and sorting happen on the
// client.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	universities, err := h.store.ListAll()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}
	return response.JSON(c, universities)
}

// SearchUniversities handles GET /api/universities/search?q=term. A
// missing or blank q yields an empty array, not an error.
func (h *UniversityHandler) SearchUniversities(c *fiber.Ctx) error {
	query := c.Query("q", "")

	results, err := h.store.Search(query)
	if err != nil {
		return response.InternalServerError(c, "Failed to search universities")
	}
	return response.JSON(c, results)
}

// GetUniversity handles GET /api/universities/:slug
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	slug := c.Params("slug")

	university, err := h.store.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}
	return response.JSON(c, university)
}
