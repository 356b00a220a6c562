package posdb

import (
	"context"

	"pos-loyalty-gateway/internal/model"
)

// Querier runs the two fixed settlement aggregations against the POS
// database.
type Querier interface {
	FetchCollection(ctx context.Context) ([]model.MemberActivity, error)
	FetchRedemption(ctx context.Context) ([]model.MemberActivity, error)
}
