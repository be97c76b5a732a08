package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecofinds/marketplace/internal/api/metrics"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// ProductHandler serves the shared catalog and the owner's listing CRUD.
type ProductHandler struct {
	catalog  ports.CatalogService
	listings ports.ListingService
}

func NewProductHandler(catalog ports.CatalogService, listings ports.ListingService) *ProductHandler {
	return &ProductHandler{catalog: catalog, listings: listings}
}

// Search handles GET /v1/products — the feed, filtered and sorted.
//
// @Summary      Browse the catalog
// @Tags         products
// @Produce      json
// @Param        q         query     string  false  "Case-insensitive substring match on title"
// @Param        category  query     string  false  "Exact category filter"
// @Success      200       {object}  productListResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Get handles GET /v1/products/:id — the product detail page.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /v1/products — a new listing owned by the caller.
//
// @Summary      Create a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      listingRequest  true  "Listing fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.listings.Create(c.Request().Context(), userID, toListingInput(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(product.Category)).Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /v1/products/:id — owner-only edit.
//
// @Summary      Update a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      listingRequest  true  "Listing fields"
// @Success      200   {object}  productResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.listings.Update(c.Request().Context(), userID, c.Param("id"), toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /v1/products/:id — owner-only removal. Deleting an
// id that is already gone still returns 204.
//
// @Summary      Delete a listing
// @Tags         products
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.listings.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.ListingsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Mine handles GET /v1/listings — the caller's own products.
//
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/listings [get]
func (h *ProductHandler) Mine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	products, err := h.listings.Mine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}
