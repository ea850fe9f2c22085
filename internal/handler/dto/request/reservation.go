package request

type CheckoutItemRequest struct {
	OfferID  int64 `json:"offer_id" binding:"required,gt=0"`
	Quantity int32 `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}
