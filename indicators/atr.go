package indicators

import (
	"fmt"
	"math"

	"github.com/tekoa-labs/riskcore/pricing"
)

func trueRange(c, prev pricing.Candle) float64 {
	a := c.High - c.Low
	b := math.Abs(c.High - prev.Close)
	d := math.Abs(c.Low - prev.Close)
	return math.Max(a, math.Max(b, d))
}

// ATRFunc calculates the Average True Range for the given period using
// Wilder's smoothing. Returns an error if there aren't enough candles.
func ATRFunc(candles []pricing.Candle, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(candles) < period+1 {
		return 0, fmt.Errorf("not enough candles: need %d, got %d", period+1, len(candles))
	}

	trueRanges := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		trueRanges = append(trueRanges, trueRange(candles[i], candles[i-1]))
	}

	// Initial ATR is the SMA of the first 'period' true ranges.
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += trueRanges[i]
	}
	atr := sum / float64(period)

	// Smooth remaining values using Wilder's method.
	for i := period; i < len(trueRanges); i++ {
		atr = (atr*float64(period-1) + trueRanges[i]) / float64(period)
	}

	return atr, nil
}

// ATR is a streaming Average True Range indicator.
type ATR struct {
	period      int
	atr         float64
	count       int
	warmupSum   float64
	prevCandle  pricing.Candle
	hasPrevious bool
}

// NewATR creates a new Average True Range indicator with the given period
func NewATR(period int) *ATR {
	return &ATR{period: period}
}

func (a *ATR) Name() string {
	return fmt.Sprintf("ATR(%d)", a.period)
}

// Update feeds one candle into the indicator and returns the current ATR.
// The value is zero until the warmup period has elapsed.
func (a *ATR) Update(c pricing.Candle) float64 {
	if !a.hasPrevious {
		a.prevCandle = c
		a.hasPrevious = true
		return 0
	}

	tr := trueRange(c, a.prevCandle)
	a.prevCandle = c

	if a.count < a.period {
		a.warmupSum += tr
		a.count++
		if a.count == a.period {
			a.atr = a.warmupSum / float64(a.period)
		}
		return a.atr
	}

	a.atr = (a.atr*float64(a.period-1) + tr) / float64(a.period)
	return a.atr
}

// Ready reports whether the warmup period has elapsed.
func (a *ATR) Ready() bool {
	return a.count >= a.period
}

// Value returns the current ATR, zero before warmup completes.
func (a *ATR) Value() float64 {
	return a.atr
}
