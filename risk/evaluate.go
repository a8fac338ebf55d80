package risk

import "github.com/tekoa-labs/riskcore/market"

// Decision is the outcome of running the full pipeline for one trade intent.
type Decision struct {
	Allowed bool
	Result  SizeResult

	// Reason is the human-readable first failure; empty when allowed.
	Reason string
	// Err is the underlying sentinel-wrapped error; nil when allowed.
	Err error
}

func refuse(err error) Decision {
	return Decision{Reason: err.Error(), Err: err}
}

// Evaluate runs resolve -> size -> validate in one call for callers that do
// not need the intermediate results. The portfolio snapshot and market
// context must be resolved by the caller beforehand; Evaluate itself does no
// I/O and holds no state between calls.
func Evaluate(req Request, portfolio PortfolioState, mkt MarketContext) Decision {
	// Callers rarely supply the pip size by hand; default it from the
	// instrument table when absent.
	if mkt.PipSize.Sign() <= 0 {
		if meta, err := market.Lookup(req.Instrument); err == nil {
			mkt.PipSize = meta.PipSize()
		}
	}

	stopDistance, err := ResolveStopDistance(req.StopLoss, req.Side, req.EntryPrice, mkt)
	if err != nil {
		return refuse(err)
	}

	result, err := ComputePositionSize(req, portfolio.AccountBalance, stopDistance)
	if err != nil {
		return refuse(err)
	}

	if _, err := ValidateTrade(result.Size, portfolio, req.Limits); err != nil {
		return refuse(err)
	}

	return Decision{Allowed: true, Result: result}
}
