package covid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rate *float64
		want string
	}{
		{"undefined rate", nil, RiskNone},
		{"zero", f64(0), RiskLow},
		{"just below lower boundary", f64(1.9999), RiskLow},
		{"lower boundary is Medium", f64(2), RiskMedium},
		{"mid range", f64(3.7143), RiskMedium},
		{"upper boundary is Medium", f64(5), RiskMedium},
		{"just above upper boundary", f64(5.0001), RiskHigh},
		{"high", f64(25), RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rate))
		})
	}
}
