package dashboard

// Summary carries the derived aggregate counts for the dashboard cards.
type Summary struct {
	Distributors  int64 `json:"distributors"`
	Staff         int64 `json:"staff"`
	PendingClaims int64 `json:"pending_claims"`
	OpenInquiries int64 `json:"open_inquiries"`
	PendingOrders int64 `json:"pending_orders"`
}
