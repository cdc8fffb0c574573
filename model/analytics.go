package model

// Analytics is the aggregated dashboard payload from /auth/analytics.
type Analytics struct {
	Summary      AnalyticsSummary `json:"summary"`
	BestSeller   *ProductSales    `json:"bestSeller,omitempty"`
	Timeline     []TimelinePoint  `json:"timeline"`
	ProductSales []ProductSales   `json:"productSales"`
}

type AnalyticsSummary struct {
	TotalRevenue      Money `json:"totalRevenue"`
	AverageOrderValue Money `json:"averageOrderValue"`
	TotalBookings     int   `json:"totalBookings"`
	RepeatCustomers   int   `json:"repeatCustomers"`
}

type TimelinePoint struct {
	Label   string `json:"label"`
	Revenue Money  `json:"revenue"`
}

type ProductSales struct {
	Name      string `json:"name"`
	TotalSold int    `json:"totalSold"`
}
