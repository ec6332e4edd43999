package conversion

import "context"

// ConversionRepository persists conversion records.
type ConversionRepository interface {
	Create(ctx context.Context, c *Conversion) error
	GetBySID(ctx context.Context, sid string) (*Conversion, error)
	ListByUserID(ctx context.Context, userID uint, limit int) ([]*Conversion, error)
}
