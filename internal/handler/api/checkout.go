package api

import (
	"errors"
	"net/http"

	"devion-storefront/internal/domain/checkout"
	reqdto "devion-storefront/internal/handler/dto/request"
	resdto "devion-storefront/internal/handler/dto/response"
	"devion-storefront/internal/handler/httperr"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Resume checkout
// @Description Return the active order summary, or a shop redirect when the snapshot is absent or expired
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Router /checkout [get]
func (h *CheckoutHandler) Resume(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.checkoutCommands.Resume(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load checkout", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Apply coupon at checkout
// @Description Re-run the coupon engine against the frozen snapshot totals
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CouponRequest true "Coupon code"
// @Success 200 {object} resdto.CheckoutCouponResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.CouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.checkoutCommands.ApplyCoupon(c.Request.Context(), id, req.Code)
	if err != nil {
		h.handleCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutCouponResult(result))
}

// @Summary Select payment method
// @Description Record the payment method once the shipping form is complete
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.SelectPaymentMethodRequest true "Method and shipping form"
// @Success 200 {object} resdto.SelectMethodResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/payment-method [post]
func (h *CheckoutHandler) SelectPaymentMethod(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectPaymentMethodRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	method, parseErr := checkout.ParsePaymentMethod(req.Method)
	if parseErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Unknown payment method", nil)
		return
	}

	result, err := h.checkoutCommands.SelectPaymentMethod(c.Request.Context(), id, method, req.Form.ToDomain())
	if err != nil {
		h.handleCheckoutError(c, err)
		return
	}

	if len(result.FieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, resdto.FromSelectMethodResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelectMethodResult(result))
}

// @Summary Place order
// @Description Complete a card or cash order; widget methods are pointed at their button
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Shipping form and optional card details"
// @Success 200 {object} resdto.PlaceOrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/order [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input := commands.PlaceOrderInput{Form: req.Form.ToDomain()}
	if req.Card != nil {
		card := req.Card.ToDomain()
		input.Card = &card
	}

	result, err := h.checkoutCommands.PlaceOrder(c.Request.Context(), id, input)
	if err != nil {
		// rejections carry a result body with the notification the client
		// renders; everything else is a plain error response
		switch {
		case errors.Is(err, errs.ErrNoPaymentMethod) && result != nil:
			c.JSON(http.StatusConflict, resdto.FromPlaceOrderResult(result))
		case errors.Is(err, errs.ErrInvalidCardDetails) && result != nil:
			c.JSON(http.StatusUnprocessableEntity, resdto.FromPlaceOrderResult(result))
		default:
			h.handleCheckoutError(c, err)
		}
		return
	}

	if len(result.FieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, resdto.FromPlaceOrderResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlaceOrderResult(result))
}

// @Summary Create widget order
// @Description Gateway order-creation callback for the embedded payment widget
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.WidgetOrderResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout/{method}/order [post]
func (h *CheckoutHandler) CreateWidgetOrder(method checkout.PaymentMethod) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		result, err := h.checkoutCommands.CreateWidgetOrder(c.Request.Context(), id, method)
		if err != nil {
			if errors.Is(err, errs.ErrIncompleteShippingForm) && result != nil {
				c.JSON(http.StatusUnprocessableEntity, resdto.FromWidgetOrderResult(result))
				return
			}
			h.handleCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromWidgetOrderResult(result))
	}
}

// @Summary Approve widget payment
// @Description Capture an approved widget payment and complete the order
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.WidgetApproveRequest true "Gateway order id"
// @Success 200 {object} resdto.PlaceOrderResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/{method}/capture [post]
func (h *CheckoutHandler) ApproveWidgetPayment(method checkout.PaymentMethod) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var req reqdto.WidgetApproveRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}

		result, err := h.checkoutCommands.ApproveWidgetPayment(c.Request.Context(), id, method, req.OrderID)
		if err != nil {
			h.handleCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromPlaceOrderResult(result))
	}
}

// @Summary Cancel widget payment
// @Description Return to method selection; the selected method is retained
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/{method}/cancel [post]
func (h *CheckoutHandler) CancelWidgetPayment(method checkout.PaymentMethod) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		result, err := h.checkoutCommands.CancelWidgetPayment(c.Request.Context(), id, method)
		if err != nil {
			h.handleCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCancelResult(result))
	}
}

// @Summary Report widget error
// @Description Log a widget failure and return a remediation notification; checkout state is unchanged
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.WidgetErrorRequest true "Widget error message"
// @Success 200 {object} resdto.WidgetErrorResponse
// @Router /checkout/{method}/error [post]
func (h *CheckoutHandler) ReportWidgetError(method checkout.PaymentMethod) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionID(c)
		if !ok {
			return
		}

		var req reqdto.WidgetErrorRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}

		result, err := h.checkoutCommands.ReportWidgetError(c.Request.Context(), id, method, req.Message)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record widget error", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromWidgetErrorResult(result))
	}
}

func (h *CheckoutHandler) handleCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCheckoutNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No checkout data found", nil)
	case errors.Is(err, errs.ErrOrderAlreadyCompleted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order already completed", nil)
	case errors.Is(err, errs.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway unavailable, please try again", nil)
	case errors.Is(err, checkout.ErrUnknownPaymentMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment method", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
