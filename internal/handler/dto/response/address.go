package response

import (
	"devion-storefront/internal/usecase/queries"
	"devion-storefront/internal/usecase/shared"
)

type AddressLookupResponse struct {
	Address      *queries.AddressView `json:"address,omitempty"`
	Notification *shared.Notification `json:"notification,omitempty"`
}
