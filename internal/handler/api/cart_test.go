//go:build unit

package api_test

import (
	"net/http"
	"testing"

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
	"devion-storefront/tests/common/testutil"
	commandsmock "devion-storefront/tests/mock/commands"
	queriesmock "devion-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)

	// The real session middleware mints an anonymous session for cookieless
	// requests, so no stub is needed.
	s.router.Use(middleware.SessionMiddleware(config.NewTestConfig().Store))

	s.router.GET("/cart", s.handler.GetCart)
	s.router.DELETE("/cart", s.handler.Clear)
	s.router.POST("/cart/items", s.handler.AddItem)
	s.router.DELETE("/cart/items/:id", s.handler.RemoveItem)
	s.router.PATCH("/cart/items/:id", s.handler.UpdateQuantity)
	s.router.POST("/cart/coupon", s.handler.ApplyCoupon)
	s.router.POST("/cart/checkout", s.handler.BeginCheckout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func cartSummary() *queries.CartSummaryView {
	return queries.NewCartSummaryView(builder.NewCartBuilder().BuildDomain())
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: returns 200 with cart summary", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
			Return(cartSummary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var resp resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.Cart)
		s.Equal("$54.98", resp.Cart.Total)
	})

	s.Run("mints a session cookie on first contact", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
			Return(cartSummary(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		cookie := httptest.ExtractCookie(rec, "storefront_session")
		s.Require().NotNil(cookie)
		s.NotEmpty(cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("failure: returns 500 when the store is unreachable", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrStorageOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load cart")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	reqBody := builder.NewCartItemBuilder().BuildAddRequestDTO()

	s.Run("success: returns 200 with updated cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CartResult{
				Summary:      cartSummary(),
				Notification: shared.Success("Wireless Keyboard added to cart!"),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.Notification)
		s.Equal(shared.SeveritySuccess, resp.Notification.Severity)
	})

	missing := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing field: id (required)", mutate: testutil.Field("id", nil)},
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
		{name: "missing field: price (required)", mutate: testutil.Field("price", nil)},
	}
	for _, tc := range missing {
		s.Run("failure: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	s.Run("failure: returns 400 for a malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-json", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.mockCommands.EXPECT().RemoveItem(gomock.Any(), gomock.Any(), "prod-001").
		Return(&commands.CartResult{Summary: cartSummary()}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/prod-001", nil, "")

	var resp resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	url := "/cart/items/prod-001"

	s.Run("success: passes the exact quantity through", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), "prod-001", 3).
			Return(&commands.CartResult{Summary: cartSummary()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"quantity": 3}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: zero is a valid quantity and removes the item", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), "prod-001", 0).
			Return(&commands.CartResult{Summary: cartSummary()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"quantity": 0}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("failure: returns 400 when quantity is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestApplyCoupon() {
	url := "/cart/coupon"

	s.Run("success: applied coupon reports the discount", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), gomock.Any(), "WELCOME10").
			Return(&commands.CouponResult{
				Summary:  cartSummary(),
				Applied:  true,
				Discount: "10.00",
				Message:  "Coupon applied! Discount: $10.00",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "WELCOME10"}, "")

		var resp resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Applied)
	})

	s.Run("success: rejected coupon is still a 200", func() {
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), gomock.Any(), "BOGUS").
			Return(&commands.CouponResult{
				Summary: cartSummary(),
				Applied: false,
				Message: "Invalid coupon code",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "BOGUS"}, "")

		var resp resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.Applied)
		s.Equal("Invalid coupon code", resp.Message)
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.mockCommands.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *CartHandlerTestSuite) TestBeginCheckout() {
	url := "/cart/checkout"

	s.Run("success: returns the frozen summary and a checkout redirect", func() {
		state := builder.NewCheckoutBuilder().BuildDomain()
		s.mockCommands.EXPECT().BeginCheckout(gomock.Any(), gomock.Any()).
			Return(&commands.BeginCheckoutResult{
				Summary:  queries.NewOrderSummaryView(state),
				Redirect: shared.RedirectTo(shared.DestinationCheckout),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var resp resdto.BeginCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.Redirect)
		s.Equal(shared.DestinationCheckout, resp.Redirect.Destination)
	})

	s.Run("failure: returns 409 for an empty cart", func() {
		s.mockCommands.EXPECT().BeginCheckout(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCartEmpty).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Your cart is empty")
	})
}
