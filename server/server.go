// Package server is the JSON-over-HTTP boundary around the risk engine.
// It translates request/response schemas at the edge; all domain rules live
// in the risk package.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tekoa-labs/riskcore/journal"
	"github.com/tekoa-labs/riskcore/market"
	"github.com/tekoa-labs/riskcore/monitoring"
	"github.com/tekoa-labs/riskcore/pkg/id"
	"github.com/tekoa-labs/riskcore/risk"
)

type Server struct {
	log     *zap.Logger
	journal journal.Journal
	health  *monitoring.HealthChecker
	mux     *http.ServeMux
}

func New(log *zap.Logger, j journal.Journal) *Server {
	s := &Server{
		log:     log,
		journal: j,
		health:  monitoring.NewHealthChecker(),
		mux:     http.NewServeMux(),
	}

	s.mux.Handle("/v1/size", methodOnly(http.MethodPost, http.HandlerFunc(s.handleSize)))
	s.mux.Handle("/v1/portfolio/metrics", methodOnly(http.MethodPost, http.HandlerFunc(s.handlePortfolioMetrics)))
	s.mux.Handle("/metrics", methodOnly(http.MethodGet, monitoring.Handler()))
	s.mux.Handle("/healthz", methodOnly(http.MethodGet, s.health))

	return s
}

// methodOnly restricts a route to a single HTTP method, matching the
// behavior of Go 1.22+ ServeMux method patterns on the Go 1.21 mux.
func methodOnly(method string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type stopLossPayload struct {
	Kind     string          `json:"kind"` // "fixed_pips", "technical", "atr_multiple"
	Pips     decimal.Decimal `json:"pips,omitempty"`
	Multiple decimal.Decimal `json:"multiple,omitempty"`
	Level    decimal.Decimal `json:"level,omitempty"`
}

type takeProfitPayload struct {
	Kind  string          `json:"kind"` // "risk_reward", "fixed_pips"
	Ratio decimal.Decimal `json:"ratio,omitempty"`
	Pips  decimal.Decimal `json:"pips,omitempty"`
}

type sizeRequest struct {
	Instrument  string             `json:"instrument"`
	Side        string             `json:"side"` // "long" or "short"
	EntryPrice  decimal.Decimal    `json:"entry_price"`
	RiskPercent decimal.Decimal    `json:"risk_percent"`
	StopLoss    stopLossPayload    `json:"stop_loss"`
	TakeProfit  *takeProfitPayload `json:"take_profit,omitempty"`
	ATR         decimal.Decimal    `json:"atr,omitempty"`

	MaxOpenPositions int             `json:"max_open_positions"`
	MaxDailyLoss     decimal.Decimal `json:"max_daily_loss"`

	OpenPositions     int             `json:"open_positions"`
	RealizedLossToday decimal.Decimal `json:"realized_loss_today"`
	AccountBalance    decimal.Decimal `json:"account_balance"`
}

type sizeResponse struct {
	Allowed         bool            `json:"allowed"`
	Size            decimal.Decimal `json:"size"`
	StopDistance    decimal.Decimal `json:"stop_distance"`
	RiskAmount      decimal.Decimal `json:"risk_amount"`
	TakeProfitPrice decimal.Decimal `json:"take_profit_price,omitempty"`
	Reason          string          `json:"reason,omitempty"`
}

func (p sizeRequest) toEngine() (risk.Request, risk.PortfolioState, risk.MarketContext, error) {
	var side market.Side
	switch p.Side {
	case "long":
		side = market.Long
	case "short":
		side = market.Short
	default:
		return risk.Request{}, risk.PortfolioState{}, risk.MarketContext{},
			errors.New(`side must be "long" or "short"`)
	}

	req := risk.Request{
		Instrument:  p.Instrument,
		Side:        side,
		EntryPrice:  p.EntryPrice,
		RiskPercent: p.RiskPercent,
		Limits: risk.Limits{
			MaxOpenPositions: p.MaxOpenPositions,
			MaxDailyLoss:     p.MaxDailyLoss,
		},
	}

	switch p.StopLoss.Kind {
	case "fixed_pips":
		req.StopLoss = risk.FixedPipsStop(p.StopLoss.Pips)
	case "technical":
		req.StopLoss = risk.TechnicalStop()
	case "atr_multiple":
		req.StopLoss = risk.ATRMultipleStop(p.StopLoss.Multiple)
	default:
		return risk.Request{}, risk.PortfolioState{}, risk.MarketContext{},
			errors.New("unknown stop_loss.kind")
	}

	if p.TakeProfit != nil {
		switch p.TakeProfit.Kind {
		case "risk_reward":
			req.TakeProfit = risk.RiskRewardTarget(p.TakeProfit.Ratio)
		case "fixed_pips":
			req.TakeProfit = risk.FixedPipsTarget(p.TakeProfit.Pips)
		default:
			return risk.Request{}, risk.PortfolioState{}, risk.MarketContext{},
				errors.New("unknown take_profit.kind")
		}
	}

	portfolio := risk.PortfolioState{
		OpenPositions:     p.OpenPositions,
		RealizedLossToday: p.RealizedLossToday,
		AccountBalance:    p.AccountBalance,
	}

	mkt := risk.MarketContext{
		ATR:            p.ATR,
		TechnicalLevel: p.StopLoss.Level,
	}

	return req, portfolio, mkt, nil
}

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	var payload sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.badRequest(w, err)
		return
	}

	req, portfolio, mkt, err := payload.toEngine()
	if err != nil {
		s.badRequest(w, err)
		return
	}

	d := risk.Evaluate(req, portfolio, mkt)
	s.health.MarkDecision()

	outcome := journal.OutcomeApproved
	if !d.Allowed {
		outcome = journal.OutcomeRejected
	}
	monitoring.RecordDecision(req.Instrument, outcome, d.Result.RiskAmount.InexactFloat64())

	rec := journal.FromDecision(id.New(), time.Now().UTC(), req.Instrument, req.Side.String(), d)
	if err := s.journal.RecordDecision(rec); err != nil {
		// Journaling is best-effort at this boundary; the decision itself
		// already stands.
		s.log.Warn("journal write failed", zap.Error(err))
		monitoring.RecordError("journal")
	}

	s.log.Info("decision",
		zap.String("instrument", req.Instrument),
		zap.String("side", req.Side.String()),
		zap.String("outcome", outcome),
		zap.String("size", d.Result.Size.String()),
		zap.String("reason", d.Reason),
	)

	writeJSON(w, http.StatusOK, sizeResponse{
		Allowed:         d.Allowed,
		Size:            d.Result.Size,
		StopDistance:    d.Result.StopDistance,
		RiskAmount:      d.Result.RiskAmount,
		TakeProfitPrice: d.Result.TakeProfitPrice,
		Reason:          d.Reason,
	})
}

type portfolioMetricsRequest struct {
	AccountBalance decimal.Decimal       `json:"account_balance"`
	Positions      []openPositionPayload `json:"positions"`
}

type openPositionPayload struct {
	Instrument   string          `json:"instrument"`
	Side         string          `json:"side"`
	Units        decimal.Decimal `json:"units"`
	EntryPrice   decimal.Decimal `json:"entry_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	StopPrice    decimal.Decimal `json:"stop_price,omitempty"`
	UnrealizedPL decimal.Decimal `json:"unrealized_pl"`
}

type portfolioMetricsResponse struct {
	OpenPositions          int             `json:"open_positions"`
	TotalExposure          decimal.Decimal `json:"total_exposure"`
	UnrealizedPL           decimal.Decimal `json:"unrealized_pl"`
	LargestPositionRiskPct decimal.Decimal `json:"largest_position_risk_pct"`
	LargestRiskInstrument  string          `json:"largest_risk_instrument,omitempty"`
}

func (s *Server) handlePortfolioMetrics(w http.ResponseWriter, r *http.Request) {
	var payload portfolioMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.badRequest(w, err)
		return
	}

	positions := make([]market.OpenPosition, 0, len(payload.Positions))
	for _, p := range payload.Positions {
		side := market.Long
		if p.Side == "short" {
			side = market.Short
		}
		positions = append(positions, market.OpenPosition{
			Instrument:   p.Instrument,
			Side:         side,
			Units:        p.Units,
			EntryPrice:   p.EntryPrice,
			CurrentPrice: p.CurrentPrice,
			StopPrice:    p.StopPrice,
			UnrealizedPL: p.UnrealizedPL,
		})
	}

	summary := risk.AggregateRiskMetrics(positions, payload.AccountBalance)
	monitoring.UpdatePortfolio(summary.TotalExposure.InexactFloat64(), summary.OpenPositions)

	writeJSON(w, http.StatusOK, portfolioMetricsResponse{
		OpenPositions:          summary.OpenPositions,
		TotalExposure:          summary.TotalExposure,
		UnrealizedPL:           summary.UnrealizedPL,
		LargestPositionRiskPct: summary.LargestPositionRiskPct,
		LargestRiskInstrument:  summary.LargestRiskInstrument,
	})
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.log.Debug("bad request", zap.Error(err))
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
