package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecofinds/marketplace/internal/api/metrics"
	"github.com/ecofinds/marketplace/internal/core/domain"
	"github.com/ecofinds/marketplace/internal/core/ports"
)

// CheckoutHandler converts the cart into purchase history and serves the
// history itself.
type CheckoutHandler struct {
	checkoutService ports.CheckoutService
}

func NewCheckoutHandler(checkoutService ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles POST /v1/checkout.
//
// @Summary      Check out the cart
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  checkoutResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.checkoutService.Checkout(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
		} else {
			metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	metrics.CheckoutLines.Observe(float64(result.Lines))
	return c.JSON(http.StatusOK, checkoutResponse{
		Lines:       result.Lines,
		Total:       result.Total,
		PurchasedAt: result.PurchasedAt.UTC(),
	})
}

// History handles GET /v1/purchases.
//
// @Summary      List purchase history
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  purchaseListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/purchases [get]
func (h *CheckoutHandler) History(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	views, err := h.checkoutService.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPurchaseListResponse(views))
}
