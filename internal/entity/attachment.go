package entity

import "github.com/uptrace/bun"

// Attachment records one uploaded PDF tied to an order. Seq is a
// per-order counter starting at 1; FilePath is the on-disk location
// derived from the order number, year, and sequence.
type Attachment struct {
	bun.BaseModel `bun:"table:order_pdfs"`

	ID        int64  `bun:"id,pk,autoincrement"`
	OrderID   int64  `bun:"order_id"`
	OrderNo   string `bun:"order_no"`
	OrderYear string `bun:"order_year"`
	Seq       int    `bun:"seq"`
	FilePath  string `bun:"file_path"`
}
