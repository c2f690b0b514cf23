//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/handler/api"
	resdto "devion-storefront/internal/handler/dto/response"
	"devion-storefront/internal/handler/middleware"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"
	"devion-storefront/tests/common/builder"
	"devion-storefront/tests/common/httptest"
	commandsmock "devion-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.Use(middleware.SessionMiddleware(config.NewTestConfig().Store))

	s.router.GET("/checkout", s.handler.Resume)
	s.router.POST("/checkout/coupon", s.handler.ApplyCoupon)
	s.router.POST("/checkout/payment-method", s.handler.SelectPaymentMethod)
	s.router.POST("/checkout/order", s.handler.PlaceOrder)
	for _, method := range []checkout.PaymentMethod{checkout.MethodPayPal, checkout.MethodMercadoPago} {
		group := s.router.Group("/checkout/" + method.String())
		group.POST("/order", s.handler.CreateWidgetOrder(method))
		group.POST("/capture", s.handler.ApproveWidgetPayment(method))
		group.POST("/cancel", s.handler.CancelWidgetPayment(method))
		group.POST("/error", s.handler.ReportWidgetError(method))
	}
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func orderSummary() *queries.OrderSummaryView {
	return queries.NewOrderSummaryView(builder.NewCheckoutBuilder().BuildDomain())
}

func (s *CheckoutHandlerTestSuite) TestResume() {
	s.Run("success: returns the active order summary", func() {
		s.mockCommands.EXPECT().Resume(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutView{Summary: orderSummary()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout", nil, "")

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.Order)
		s.Equal("$54.98", resp.Order.Total)
		s.Nil(resp.Redirect)
	})

	s.Run("success: absent snapshot redirects to the shop", func() {
		s.mockCommands.EXPECT().Resume(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutView{
				Redirect:     shared.RedirectTo(shared.DestinationShop),
				Notification: shared.Warning("No checkout data found. Redirecting to shop..."),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout", nil, "")

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Nil(resp.Order)
		s.Require().NotNil(resp.Redirect)
		s.Equal(shared.DestinationShop, resp.Redirect.Destination)
	})
}

func (s *CheckoutHandlerTestSuite) TestApplyCoupon() {
	url := "/checkout/coupon"

	s.Run("success: re-applied coupon updates the snapshot totals", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), gomock.Any(), "SAVE20").
			Return(&commands.CheckoutCouponResult{
				Summary: orderSummary(),
				Applied: true,
				Message: "Coupon applied! Discount: $20.00",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "SAVE20"}, "")

		var resp resdto.CheckoutCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Applied)
	})

	s.Run("failure: returns 404 when no checkout is active", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), gomock.Any(), "SAVE20").
			Return(nil, errs.ErrCheckoutNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "SAVE20"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No checkout data found")
	})
}

func (s *CheckoutHandlerTestSuite) TestSelectPaymentMethod() {
	url := "/checkout/payment-method"
	form := builder.NewShippingFormBuilder().BuildRequestDTO()

	s.Run("success: records the method", func() {
		s.mockCommands.EXPECT().
			SelectPaymentMethod(gomock.Any(), gomock.Any(), checkout.MethodCard, gomock.Any()).
			Return(&commands.SelectMethodResult{Summary: orderSummary()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"method": "card", "form": form}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("failure: returns 400 for an unknown method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"method": "bitcoin", "form": form}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("failure: returns 422 with field errors for an incomplete form", func() {
		s.mockCommands.EXPECT().
			SelectPaymentMethod(gomock.Any(), gomock.Any(), checkout.MethodCard, gomock.Any()).
			Return(&commands.SelectMethodResult{
				Summary:     orderSummary(),
				FieldErrors: []checkout.FieldError{{Field: "email", Message: "Email is invalid"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"method": "card", "form": form}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var resp resdto.SelectMethodResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Require().Len(resp.FieldErrors, 1)
		s.Equal("email", resp.FieldErrors[0].Field)
	})
}

func (s *CheckoutHandlerTestSuite) TestPlaceOrder() {
	url := "/checkout/order"
	form := builder.NewShippingFormBuilder().BuildRequestDTO()

	s.Run("success: completed card order redirects home", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_, _ any, input commands.PlaceOrderInput) (*commands.PlaceOrderResult, error) {
				s.Require().NotNil(input.Card)
				s.Equal("4242 4242 4242 4242", input.Card.Number)
				return &commands.PlaceOrderResult{
					Completed:    true,
					Method:       "Credit Card",
					Notification: shared.Success("Order placed successfully with Credit Card! Thank you for your purchase."),
					Redirect:     shared.RedirectTo(shared.DestinationHome),
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"form": form,
			"card": map[string]any{
				"number":     "4242 4242 4242 4242",
				"expiry":     "12/27",
				"cvv":        "123",
				"holderName": "Ana Martinez",
			},
		}, "")

		var resp resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Completed)
		s.Equal(shared.DestinationHome, resp.Redirect.Destination)
	})

	s.Run("failure: returns 422 with field errors", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PlaceOrderResult{
				FieldErrors:  []checkout.FieldError{{Field: "firstName", Message: "First name is required"}},
				Notification: shared.Error("Please fill in all required fields."),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"form": map[string]any{}}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("failure: returns 409 for a double submit", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrOrderAlreadyCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"form": form}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Order already completed")
	})

	s.Run("failure: returns 409 when no payment method is selected", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PlaceOrderResult{
				Notification: shared.Error("Please select a payment method."),
			}, errs.ErrNoPaymentMethod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"form": form}, "")
		s.Equal(http.StatusConflict, rec.Code)

		var resp resdto.PlaceOrderResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Require().NotNil(resp.Notification)
		s.Contains(resp.Notification.Message, "payment method")
	})

	s.Run("failure: returns 422 for invalid card details", func() {
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PlaceOrderResult{
				FieldErrors:  []checkout.FieldError{{Field: "cardNumber", Message: "Card number is invalid"}},
				Notification: shared.Error("Please fill in all card details."),
			}, errs.ErrInvalidCardDetails).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"form": form}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var resp resdto.PlaceOrderResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Require().Len(resp.FieldErrors, 1)
		s.Equal("cardNumber", resp.FieldErrors[0].Field)
	})
}

func (s *CheckoutHandlerTestSuite) TestCreateWidgetOrder() {
	s.Run("success: returns the gateway order id", func() {
		s.mockCommands.EXPECT().
			CreateWidgetOrder(gomock.Any(), gomock.Any(), checkout.MethodPayPal).
			Return(&commands.WidgetOrderResult{OrderID: "PP-ORDER-1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/paypal/order", nil, "")

		var resp resdto.WidgetOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("PP-ORDER-1", resp.OrderID)
	})

	s.Run("routes are bound per method", func() {
		s.mockCommands.EXPECT().
			CreateWidgetOrder(gomock.Any(), gomock.Any(), checkout.MethodMercadoPago).
			Return(&commands.WidgetOrderResult{OrderID: "MP-ORDER-1"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/mercadopago/order", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("failure: returns 422 when the shipping form is incomplete", func() {
		s.mockCommands.EXPECT().
			CreateWidgetOrder(gomock.Any(), gomock.Any(), checkout.MethodPayPal).
			Return(&commands.WidgetOrderResult{
				FieldErrors: []checkout.FieldError{{Field: "address", Message: "Address is required"}},
			}, errs.ErrIncompleteShippingForm).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/paypal/order", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("failure: returns 502 when the gateway is down", func() {
		s.mockCommands.EXPECT().
			CreateWidgetOrder(gomock.Any(), gomock.Any(), checkout.MethodPayPal).
			Return(nil, errs.ErrGatewayUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/paypal/order", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment gateway unavailable")
	})
}

func (s *CheckoutHandlerTestSuite) TestApproveWidgetPayment() {
	url := "/checkout/paypal/capture"

	s.Run("success: completed payment carries the confirmation redirect", func() {
		s.mockCommands.EXPECT().
			ApproveWidgetPayment(gomock.Any(), gomock.Any(), checkout.MethodPayPal, "PP-ORDER-1").
			Return(&commands.PlaceOrderResult{
				Completed:    true,
				Method:       "PayPal",
				Reference:    "TXN-42",
				Notification: shared.Success("Payment successful! Thank you for your purchase, Ana."),
				Redirect:     shared.RedirectToConfirmation("TXN-42", "Ana", "54.98", "MXN"),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"orderId": "PP-ORDER-1"}, "")

		var resp resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Completed)
		s.Require().NotNil(resp.Redirect)
		s.Equal(shared.DestinationConfirmation, resp.Redirect.Destination)
		s.Equal("54.98", resp.Redirect.Params["amount"])
	})

	s.Run("failure: returns 400 when the order id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CheckoutHandlerTestSuite) TestCancelWidgetPayment() {
	s.mockCommands.EXPECT().
		CancelWidgetPayment(gomock.Any(), gomock.Any(), checkout.MethodPayPal).
		Return(&commands.CancelResult{
			Summary:      orderSummary(),
			Notification: shared.Info("Payment cancelled. You can try again or choose another payment method."),
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/paypal/cancel", nil, "")

	var resp resdto.CancelResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().NotNil(resp.Notification)
	s.Equal(shared.SeverityInfo, resp.Notification.Severity)
}

func (s *CheckoutHandlerTestSuite) TestReportWidgetError() {
	s.mockCommands.EXPECT().
		ReportWidgetError(gomock.Any(), gomock.Any(), checkout.MethodPayPal, "ERR_BLOCKED_BY_CLIENT").
		Return(&commands.WidgetErrorResult{
			Notification: shared.Error("Please disable your ad blocker to use PayPal."),
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout/paypal/error",
		map[string]any{"message": "ERR_BLOCKED_BY_CLIENT"}, "")

	var resp resdto.WidgetErrorResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Contains(resp.Notification.Message, "ad blocker")
}
