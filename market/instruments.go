// market/instruments.go
package market

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// InstrumentMeta describes the contract terms the risk engine needs to size a
// position: where the pip sits, and the smallest tradable size increment.
type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string

	// PipLocation is the base-10 exponent of one pip: -4 for most FX pairs,
	// -2 for JPY quotes.
	PipLocation int

	// LotStep is the minimum size increment. Position sizes are floored to a
	// multiple of this.
	LotStep decimal.Decimal

	MinimumTradeSize decimal.Decimal
	MarginRate       decimal.Decimal
}

// PipSize returns the price value of one pip for this instrument.
func (m InstrumentMeta) PipSize() decimal.Decimal {
	return PipSize(m.PipLocation)
}

// PipSize returns 10^loc as a decimal.
func PipSize(loc int) decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(10, float64(loc)))
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:             "EUR_USD",
		BaseCurrency:     "EUR",
		QuoteCurrency:    "USD",
		PipLocation:      -4,
		LotStep:          decimal.NewFromInt(1),
		MinimumTradeSize: decimal.NewFromInt(1),
		MarginRate:       decimal.NewFromFloat(0.02),
	},
	"GBP_USD": {
		Name:             "GBP_USD",
		BaseCurrency:     "GBP",
		QuoteCurrency:    "USD",
		PipLocation:      -4,
		LotStep:          decimal.NewFromInt(1),
		MinimumTradeSize: decimal.NewFromInt(1),
		MarginRate:       decimal.NewFromFloat(0.05),
	},
	"USD_JPY": {
		Name:             "USD_JPY",
		BaseCurrency:     "USD",
		QuoteCurrency:    "JPY",
		PipLocation:      -2,
		LotStep:          decimal.NewFromInt(1),
		MinimumTradeSize: decimal.NewFromInt(1),
		MarginRate:       decimal.NewFromFloat(0.02),
	},
	"BTC_USD": {
		Name:             "BTC_USD",
		BaseCurrency:     "BTC",
		QuoteCurrency:    "USD",
		PipLocation:      0,
		LotStep:          decimal.NewFromFloat(0.001),
		MinimumTradeSize: decimal.NewFromFloat(0.001),
		MarginRate:       decimal.NewFromFloat(0.50),
	},
}

// Lookup returns the metadata for a known instrument.
func Lookup(name string) (InstrumentMeta, error) {
	m, ok := Instruments[name]
	if !ok {
		return InstrumentMeta{}, fmt.Errorf("unknown instrument: %s", name)
	}
	return m, nil
}
