package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order color codes derived from the order status for client-side display.
const (
	ColorGreen  = "GREEN"
	ColorRed    = "RED"
	ColorYellow = "YELLOW"
)

// Order statuses that influence the derived color. Any other status,
// including an empty one, maps to the default color.
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// NotesPlaceholder is stored when an order arrives without notes.
const NotesPlaceholder = "no notes provided"

// Order represents a procurement/contract order. The pair
// (OrderNo, OrderYear) is unique; the database enforces it.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID                   int64      `bun:"id,pk,autoincrement"`
	OrderNo              string     `bun:"order_no"`
	OrderYear            string     `bun:"order_year"`
	OrderDate            time.Time  `bun:"order_date"`
	OrderType            string     `bun:"order_type"`
	CommitteeID          *int64     `bun:"committee_id"`
	DepartmentID         *int64     `bun:"department_id"`
	MaterialName         string     `bun:"material_name"`
	EstimatorID          *int64     `bun:"estimator_id"`
	ProcedureID          int64      `bun:"procedure_id"`
	OrderStatus          string     `bun:"order_status"`
	Notes                string     `bun:"notes"`
	AchievedDate         *time.Time `bun:"achieved_date"`
	RequestedDestination string     `bun:"requested_destination"`
	FinalPrice           string     `bun:"final_price"`
	CurrencyType         string     `bun:"currency_type"`
	Color                string     `bun:"color"`
	CheckOrderLink       bool       `bun:"check_order_link"`
	UserID               *int64     `bun:"user_id"`
	CreatedAt            time.Time  `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}

// ColorForStatus maps an order status onto its display color.
func ColorForStatus(status string) string {
	switch status {
	case StatusCompleted:
		return ColorGreen
	case StatusCancelled:
		return ColorRed
	default:
		return ColorYellow
	}
}

// OrderDetails is the joined read model combining an order with the
// names of its procedure, committee, and department (sentinel values
// when unset) plus the creating user.
type OrderDetails struct {
	Order `bun:",extend"`

	ProcedureName string `bun:"procedure_name"`
	Committee     string `bun:"committee"`
	Department    string `bun:"department"`
	Username      string `bun:"username"`
}
