package api

import (
	"errors"
	"net/http"

	reqdto "devion-storefront/internal/handler/dto/request"
	resdto "devion-storefront/internal/handler/dto/response"
	"devion-storefront/internal/handler/httperr"
	"devion-storefront/internal/handler/middleware"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("session id missing from context"), "Internal server error", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get cart
// @Description Return the session's cart summary
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartQueries.GetSummary(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CartResponse{Cart: summary})
}

// @Summary Add item to cart
// @Description Add an item; an existing id merges quantities
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cartCommands.AddItem(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.cartCommands.RemoveItem(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Update item quantity
// @Description Set the quantity exactly; zero or less removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cartCommands.UpdateQuantity(c.Request.Context(), id, c.Param("id"), *req.Quantity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update quantity", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Apply coupon to cart
// @Description Apply a coupon code; an invalid code leaves the prior discount untouched
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.CouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cartCommands.ApplyCoupon(c.Request.Context(), id, req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to apply coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponResult(result))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Begin checkout
// @Description Freeze the cart into a checkout snapshot and redirect to checkout
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.BeginCheckoutResponse
// @Failure 409 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) BeginCheckout(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.cartCommands.BeginCheckout(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCartEmpty):
			httperr.AbortWithError(c, http.StatusConflict, err, "Your cart is empty", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to begin checkout", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBeginCheckoutResult(result))
}
