package dto

// CreateOrderRequest is the inbound payload for creating an order.
// Dates are wire-formatted as 2006-01-02.
type CreateOrderRequest struct {
	OrderNo              string `json:"orderNo"`
	OrderYear            string `json:"orderYear"`
	OrderDate            string `json:"orderDate"`
	OrderType            string `json:"orderType"`
	CommitteeID          *int64 `json:"coID"`
	DepartmentID         *int64 `json:"deID"`
	MaterialName         string `json:"materialName"`
	EstimatorID          *int64 `json:"estimatorID"`
	ProcedureID          *int64 `json:"procedureID"`
	OrderStatus          string `json:"orderStatus"`
	Notes                string `json:"notes"`
	AchievedDate         string `json:"achievedOrderDate"`
	RequestedDestination string `json:"priceRequestedDestination"`
	FinalPrice           string `json:"finalPrice"`
	CurrencyType         string `json:"currencyType"`
	CheckOrderLink       *bool  `json:"checkOrderLink"`
	UserID               *int64 `json:"userID"`
}

// CreateOrderResponse carries the identifier assigned by the insert.
type CreateOrderResponse struct {
	OrderID int64 `json:"orderID"`
}

// OrderDetailsResponse is the joined order read model.
type OrderDetailsResponse struct {
	OrderID              int64  `json:"orderID"`
	OrderNo              string `json:"orderNo"`
	OrderYear            string `json:"orderYear"`
	OrderDate            string `json:"orderDate"`
	OrderType            string `json:"orderType"`
	MaterialName         string `json:"materialName"`
	OrderStatus          string `json:"orderStatus"`
	Notes                string `json:"notes"`
	AchievedDate         string `json:"achievedOrderDate,omitempty"`
	RequestedDestination string `json:"priceRequestedDestination"`
	FinalPrice           string `json:"finalPrice"`
	CurrencyType         string `json:"currencyType"`
	Color                string `json:"color"`
	CheckOrderLink       bool   `json:"checkOrderLink"`
	ProcedureName        string `json:"procedureName"`
	Committee            string `json:"committee"`
	Department           string `json:"department"`
	Username             string `json:"username"`
	CreatedAt            string `json:"createdAt"`
}

// OrderCountResponse mirrors the legacy count endpoint shape.
type OrderCountResponse struct {
	Count int `json:"countAllOrderNo"`
}
