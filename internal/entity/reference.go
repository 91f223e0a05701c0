package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Committee is a lookup row orders reference.
type Committee struct {
	bun.BaseModel `bun:"table:committees"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name"`
}

// Department belongs to a committee.
type Department struct {
	bun.BaseModel `bun:"table:departments"`

	ID          int64  `bun:"id,pk"`
	Name        string `bun:"name"`
	CommitteeID int64  `bun:"committee_id"`
}

// Estimator is the person assigned to price an order.
type Estimator struct {
	bun.BaseModel `bun:"table:estimators"`

	ID           int64      `bun:"id,pk,autoincrement"`
	Name         string     `bun:"name"`
	StartDate    *time.Time `bun:"start_date"`
	EndDate      *time.Time `bun:"end_date"`
	Status       string     `bun:"status"`
	CommitteeID  *int64     `bun:"committee_id"`
	DepartmentID *int64     `bun:"department_id"`
}

// Procedure is the contracting procedure an order follows.
type Procedure struct {
	bun.BaseModel `bun:"table:procedures"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name"`
}

// User owns orders; only the name is surfaced in reads.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name"`
}
