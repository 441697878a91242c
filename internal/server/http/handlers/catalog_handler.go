package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/server/http/dto"
)

// CatalogHandler serves product browsing, search and the admin create endpoint.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		Category: c.Query("category"),
		SortBy:   c.Query("sort"),
		SortDesc: c.Query("order") == "desc",
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Search handles GET /api/products/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	rated, err := h.facade.SearchProducts(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.RatedProductResponse, 0, len(rated))
	for _, rp := range rated {
		response = append(response, dto.RatedProductResponse{
			ProductResponse: toProductResponse(rp.Product),
			AvgRating:       rp.AvgRating,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Suggestions handles GET /api/products/suggestions.
func (h *CatalogHandler) Suggestions(c *gin.Context) {
	names, err := h.facade.ProductSuggestions(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 0))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Price < 0 || req.Stock < 0 {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
