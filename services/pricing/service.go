// Package pricing computes tax-inclusive item prices.
package pricing

import (
	"math"

	"go.uber.org/zap"
)

// Service calculates tax-inclusive prices. It holds no state across
// calls beyond its logger.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new pricing Service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// TotalPrice returns price + price*tax rounded to two decimal places.
// Ties round half away from zero, the rule math.Round implements.
func (s *Service) TotalPrice(price, tax float64) float64 {
	total := math.Round((price+price*tax)*100) / 100

	s.logger.Debug("computed total price",
		zap.Float64("price", price),
		zap.Float64("tax", tax),
		zap.Float64("total_price", total))

	return total
}
