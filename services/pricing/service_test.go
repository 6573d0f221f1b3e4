package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTotalPrice(t *testing.T) {
	svc := NewService(zap.NewNop())

	tests := []struct {
		name  string
		price float64
		tax   float64
		want  float64
	}{
		{"zero tax returns price", 10, 0, 10},
		{"ten percent tax", 10, 0.1, 11},
		{"eighteen percent tax", 100, 0.18, 118},
		{"quarter tax", 10, 0.25, 12.5},
		{"rounds down below the midpoint", 10.004, 0, 10.0},
		{"half rounds away from zero", 0.125, 0, 0.13},
		{"zero price", 0, 0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.TotalPrice(tt.price, tt.tax), 1e-9)
		})
	}
}

func TestTotalPriceCommutativity(t *testing.T) {
	// The rounded result must not depend on the order the tax term and
	// the base price are summed in.
	svc := NewService(zap.NewNop())

	pairs := []struct{ price, tax float64 }{
		{19.99, 0.07},
		{3.3, 0.21},
		{100, 0.18},
		{0.01, 0.5},
	}

	for _, p := range pairs {
		direct := svc.TotalPrice(p.price, p.tax)
		reordered := math.Round((p.price*p.tax+p.price)*100) / 100
		assert.InDelta(t, direct, reordered, 1e-9)
	}
}
