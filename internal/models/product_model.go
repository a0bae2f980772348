package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType categorizes marketplace items.
type ProductType string

const (
	ProductPainting  ProductType = "painting"
	ProductWeapon    ProductType = "weapon"
	ProductTool      ProductType = "tool"
	ProductEquipment ProductType = "equipment"
)

// Product is a marketplace item owned by a teacher. Orders embed an
// immutable copy, so later catalog edits never alter purchase history.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Type      ProductType     `json:"type"`
	TeacherID string          `json:"teacherId"`
	InStock   bool            `json:"inStock"`
	Digital   bool            `json:"isDigital"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
