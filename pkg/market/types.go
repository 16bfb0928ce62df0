package market

// ordersRequest is the signed lookup body.
type ordersRequest struct {
	PurchaserMobile string `json:"purchaser_mobile"`
	LineUserID      string `json:"line_user_id"`
}

// OrdersResponse is the order-lookup result. Orders is nil when the upstream
// found nothing for the given mobile number.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// Order is one market order.
type Order struct {
	URL     string  `json:"url"`
	Status  string  `json:"status"`
	Total   int64   `json:"total"`
	PaidAt  string  `json:"paid_at"`
	Product Product `json:"product"`
}

// Product is the ordered product.
type Product struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url"`
}
