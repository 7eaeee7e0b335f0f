package dto

type PlatformStatsResponse struct {
	TotalPayment    float64 `json:"totalPayment"`
	TotalUsers      int64   `json:"totalUsers"`
	OrdersPending   int64   `json:"ordersPending"`
	OrdersDelivered int64   `json:"ordersDelivered"`
}
