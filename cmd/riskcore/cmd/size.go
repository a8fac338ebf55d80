package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tekoa-labs/riskcore/config"
	"github.com/tekoa-labs/riskcore/journal"
	"github.com/tekoa-labs/riskcore/market"
	"github.com/tekoa-labs/riskcore/pkg/id"
	"github.com/tekoa-labs/riskcore/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size one trade and gate it against portfolio limits",
	Long: `Resolve the stop distance, compute the position size and validate the
trade against open-position and daily-loss limits in one pass.

Examples:
  riskcore size --instrument EUR_USD --side long --entry 1.0850 \
    --risk-pct 1 --stop-pips 10 --balance 10000

  riskcore size --instrument EUR_USD --side short --entry 1.0850 \
    --risk-pct 1 --atr 0.0008 --atr-multiple 2 --balance 10000 --rr 2`,
	RunE: runSize,
}

var (
	sizeInstrument   string
	sizeSide         string
	sizeEntry        string
	sizeBalance      string
	sizeRiskPct      string
	sizeStopPips     string
	sizeATR          string
	sizeATRMultiple  string
	sizeStopLevel    string
	sizeRewardRatio  string
	sizeOpenCount    int
	sizeRealizedLoss string
	sizeMaxOpen      int
	sizeMaxDailyLoss string
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVar(&sizeInstrument, "instrument", "EUR_USD", "instrument symbol")
	sizeCmd.Flags().StringVar(&sizeSide, "side", "long", "trade direction: long or short")
	sizeCmd.Flags().StringVar(&sizeEntry, "entry", "", "entry price (required)")
	sizeCmd.Flags().StringVar(&sizeBalance, "balance", "10000", "account balance")
	sizeCmd.Flags().StringVar(&sizeRiskPct, "risk-pct", "1", "risk percentage of balance, (0, 100]")
	sizeCmd.Flags().StringVar(&sizeStopPips, "stop-pips", "", "fixed-pip stop distance")
	sizeCmd.Flags().StringVar(&sizeATR, "atr", "", "ATR value for an ATR-based stop")
	sizeCmd.Flags().StringVar(&sizeATRMultiple, "atr-multiple", "", "ATR multiple for an ATR-based stop")
	sizeCmd.Flags().StringVar(&sizeStopLevel, "stop-level", "", "technical stop price level")
	sizeCmd.Flags().StringVar(&sizeRewardRatio, "rr", "", "take-profit risk:reward ratio")
	sizeCmd.Flags().IntVar(&sizeOpenCount, "open-positions", 0, "currently open positions")
	sizeCmd.Flags().StringVar(&sizeRealizedLoss, "realized-loss", "0", "realized loss today")
	sizeCmd.Flags().IntVar(&sizeMaxOpen, "max-open", 5, "max open positions")
	sizeCmd.Flags().StringVar(&sizeMaxDailyLoss, "max-daily-loss", "500", "max daily loss")
	sizeCmd.MarkFlagRequired("entry")
}

func buildSizeRequest() (risk.Request, risk.PortfolioState, risk.MarketContext, error) {
	fail := func(err error) (risk.Request, risk.PortfolioState, risk.MarketContext, error) {
		return risk.Request{}, risk.PortfolioState{}, risk.MarketContext{}, err
	}

	var side market.Side
	switch sizeSide {
	case "long":
		side = market.Long
	case "short":
		side = market.Short
	default:
		return fail(fmt.Errorf("--side must be long or short, got %q", sizeSide))
	}

	entry, err := parseDecimalFlag("entry", sizeEntry)
	if err != nil {
		return fail(err)
	}
	riskPct, err := parseDecimalFlag("risk-pct", sizeRiskPct)
	if err != nil {
		return fail(err)
	}
	balance, err := parseDecimalFlag("balance", sizeBalance)
	if err != nil {
		return fail(err)
	}
	realizedLoss, err := parseDecimalFlag("realized-loss", sizeRealizedLoss)
	if err != nil {
		return fail(err)
	}
	maxDailyLoss, err := parseDecimalFlag("max-daily-loss", sizeMaxDailyLoss)
	if err != nil {
		return fail(err)
	}

	req := risk.Request{
		Instrument:  sizeInstrument,
		Side:        side,
		EntryPrice:  entry,
		RiskPercent: riskPct,
		Limits: risk.Limits{
			MaxOpenPositions: sizeMaxOpen,
			MaxDailyLoss:     maxDailyLoss,
		},
	}

	var mkt risk.MarketContext
	switch {
	case sizeStopPips != "":
		pips, err := parseDecimalFlag("stop-pips", sizeStopPips)
		if err != nil {
			return fail(err)
		}
		req.StopLoss = risk.FixedPipsStop(pips)
	case sizeStopLevel != "":
		level, err := parseDecimalFlag("stop-level", sizeStopLevel)
		if err != nil {
			return fail(err)
		}
		req.StopLoss = risk.TechnicalStop()
		mkt.TechnicalLevel = level
	case sizeATR != "" && sizeATRMultiple != "":
		atr, err := parseDecimalFlag("atr", sizeATR)
		if err != nil {
			return fail(err)
		}
		mult, err := parseDecimalFlag("atr-multiple", sizeATRMultiple)
		if err != nil {
			return fail(err)
		}
		req.StopLoss = risk.ATRMultipleStop(mult)
		mkt.ATR = atr
	default:
		return fail(fmt.Errorf("one of --stop-pips, --stop-level, or --atr with --atr-multiple is required"))
	}

	if sizeRewardRatio != "" {
		ratio, err := parseDecimalFlag("rr", sizeRewardRatio)
		if err != nil {
			return fail(err)
		}
		req.TakeProfit = risk.RiskRewardTarget(ratio)
	}

	portfolio := risk.PortfolioState{
		OpenPositions:     sizeOpenCount,
		RealizedLossToday: realizedLoss,
		AccountBalance:    balance,
	}

	return req, portfolio, mkt, nil
}

// applyConfigDefaults fills flag values from the config file; explicit flags
// always win.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if cfgFile == "" {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	f := cmd.Flags()
	if !f.Changed("instrument") {
		sizeInstrument = cfg.Risk.Instrument
	}
	if !f.Changed("risk-pct") {
		sizeRiskPct = ff(cfg.Risk.RiskPercent)
	}
	if !f.Changed("balance") {
		sizeBalance = ff(cfg.Account.Balance)
	}
	if !f.Changed("max-open") {
		sizeMaxOpen = cfg.Risk.MaxOpenPositions
	}
	if !f.Changed("max-daily-loss") {
		sizeMaxDailyLoss = ff(cfg.Risk.MaxDailyLoss)
	}
	if sizeStopPips == "" && sizeStopLevel == "" && sizeATR == "" {
		sizeStopPips = ff(cfg.Risk.StopPips)
	}
	if sizeRewardRatio == "" && cfg.Risk.RewardRatio > 0 {
		sizeRewardRatio = ff(cfg.Risk.RewardRatio)
	}
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	req, portfolio, mkt, err := buildSizeRequest()
	if err != nil {
		return err
	}

	d := risk.Evaluate(req, portfolio, mkt)

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	rec := journal.FromDecision(id.New(), time.Now().UTC(), req.Instrument, req.Side.String(), d)
	if err := j.RecordDecision(rec); err != nil {
		logger.Warn("journal write failed", zap.Error(err))
	}

	renderDecision(req, d)
	if !d.Allowed {
		os.Exit(1)
	}
	return nil
}

func renderDecision(req risk.Request, d risk.Decision) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("SIZING DECISION")

	outcome := "APPROVED"
	if !d.Allowed {
		outcome = "REJECTED"
	}

	rows := []table.Row{
		{"Instrument", req.Instrument},
		{"Side", req.Side.String()},
		{"Entry", req.EntryPrice.String()},
		{"Outcome", outcome},
	}
	if d.Allowed {
		rows = append(rows,
			table.Row{"Size", d.Result.Size.String()},
			table.Row{"Stop distance", d.Result.StopDistance.String()},
			table.Row{"Risk amount", d.Result.RiskAmount.String()},
		)
		if !d.Result.TakeProfitPrice.IsZero() {
			rows = append(rows, table.Row{"Take profit", d.Result.TakeProfitPrice.String()})
		}
	} else {
		rows = append(rows, table.Row{"Reason", d.Reason})
	}
	t.AppendRows(rows)
	t.Render()
}
