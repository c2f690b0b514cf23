package api

import (
	"errors"
	"net/http"

	resdto "devion-storefront/internal/handler/dto/response"
	"devion-storefront/internal/handler/httperr"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressQueries queries.AddressQueries
}

func NewAddressHandler(addressQueries queries.AddressQueries) *AddressHandler {
	return &AddressHandler{
		addressQueries: addressQueries,
	}
}

// @Summary Postal code lookup
// @Description Resolve city and region for a postal code; failures degrade to a manual-entry hint
// @Tags address
// @Produce json
// @Param country query string true "ISO country code"
// @Param postal query string true "Postal code"
// @Success 200 {object} resdto.AddressLookupResponse
// @Failure 400 {object} map[string]string
// @Router /address/lookup [get]
func (h *AddressHandler) Lookup(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	country := c.Query("country")
	postal := c.Query("postal")
	if country == "" || postal == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("missing lookup query parameters"), "country and postal are required", nil)
		return
	}

	view, err := h.addressQueries.Lookup(c.Request.Context(), id, country, postal)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStaleLookup):
			// superseded by a newer keystroke; nothing to show
			c.Status(http.StatusNoContent)
		case errors.Is(err, errs.ErrLookupNotFound):
			c.JSON(http.StatusOK, resdto.AddressLookupResponse{
				Notification: shared.Warning("Postal code not found. Please enter your city manually."),
			})
		default:
			c.JSON(http.StatusOK, resdto.AddressLookupResponse{
				Notification: shared.Warning("Address lookup is unavailable. Please enter your city manually."),
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.AddressLookupResponse{Address: view})
}
