package ecosim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "£2.50mln", FormatCurrency(2.5e6))
	assert.Equal(t, "£1.00mln", FormatCurrency(1e6))
	assert.Equal(t, "£12.34k", FormatCurrency(12340))
	assert.Equal(t, "£999.99", FormatCurrency(999.99))
	assert.Equal(t, "£0.00", FormatCurrency(0))
}

func TestConsumptionFraction(t *testing.T) {
	assert.Equal(t, 0.70, ConsumptionFraction(-0.01))
	assert.Equal(t, 0.95, ConsumptionFraction(0.03))
	assert.InDelta(t, 0.825, ConsumptionFraction(0.01), 1e-9)
	assert.Equal(t, 0.70, ConsumptionFraction(0))
}
