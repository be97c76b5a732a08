package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecofinds/marketplace/internal/api/metrics"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// CartHandler serves the current user's cart.
type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// View handles GET /v1/cart — resolved lines plus total.
//
// @Summary      View the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) View(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.cartService.View(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /v1/cart/items. A repeated product id increments
// the existing line instead of creating a second one.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	if err := h.cartService.AddToCart(c.Request().Context(), userID, req.ProductID, req.Qty); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return h.respondCart(c, userID)
}

// ChangeQty handles PATCH /v1/cart/items/:product_id. Driving the quantity
// to zero or below removes the line.
//
// @Summary      Adjust a cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        product_id  path      string            true  "Product id"
// @Param        body        body      changeQtyRequest  true  "Signed quantity delta"
// @Success      200         {object}  cartResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [patch]
func (h *CartHandler) ChangeQty(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changeQtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.cartService.ChangeQty(c.Request().Context(), userID, c.Param("product_id"), req.Delta); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("change_qty").Inc()
	return h.respondCart(c, userID)
}

// RemoveItem handles DELETE /v1/cart/items/:product_id.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  cartResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), userID, c.Param("product_id")); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return h.respondCart(c, userID)
}

// respondCart re-renders the cart after a mutation so the client always
// sees the post-mutation state.
func (h *CartHandler) respondCart(c echo.Context, userID string) error {
	view, err := h.cartService.View(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}
