package entity

import "github.com/shopspring/decimal"

// Coupon cupón de descuento reutilizable. Exactamente uno de DiscountPercentage
// o DiscountAmount está definido (se valida al crear). ExpiresAt se almacena
// pero no se evalúa al aplicar el cupón.
type Coupon struct {
	ID                 string
	Code               string // único
	DiscountPercentage *decimal.Decimal // 0..100
	DiscountAmount     *decimal.Decimal // >= 0
	MaxUses            *int64
	CurrentUses        int64
	IsActive           bool
	ExpiresAt          string // marcador libre, sin semántica en el motor
	Audit
}

// Discount calcula el descuento para un subtotal dado.
// Si ninguno de los dos campos está definido (en principio inalcanzable por la
// validación de creación) devuelve cero.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountPercentage != nil {
		return subtotal.Mul(*c.DiscountPercentage).Div(decimal.NewFromInt(100))
	}
	if c.DiscountAmount != nil {
		return *c.DiscountAmount
	}
	return decimal.Zero
}

// UsageExhausted indica si el cupón alcanzó su límite de usos.
func (c *Coupon) UsageExhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}
