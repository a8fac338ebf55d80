package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tekoa-labs/riskcore/market"
	"github.com/tekoa-labs/riskcore/risk"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Summarize risk across an open-position snapshot",
	Long: `Aggregate exposure, unrealized P/L and largest single-position risk
from a JSON snapshot of open positions.

Example:
  riskcore metrics --positions positions.json --balance 10000`,
	RunE: runMetrics,
}

var (
	metricsPositionsPath string
	metricsBalance       string
)

// positionFile mirrors the HTTP payload so the same snapshot JSON works on
// both boundaries.
type positionFile struct {
	Instrument   string          `json:"instrument"`
	Side         string          `json:"side"`
	Units        decimal.Decimal `json:"units"`
	EntryPrice   decimal.Decimal `json:"entry_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	StopPrice    decimal.Decimal `json:"stop_price,omitempty"`
	UnrealizedPL decimal.Decimal `json:"unrealized_pl"`
}

func init() {
	rootCmd.AddCommand(metricsCmd)

	metricsCmd.Flags().StringVar(&metricsPositionsPath, "positions", "", "path to open-positions JSON file (required)")
	metricsCmd.Flags().StringVar(&metricsBalance, "balance", "10000", "account balance")
	metricsCmd.MarkFlagRequired("positions")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	balance, err := parseDecimalFlag("balance", metricsBalance)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(metricsPositionsPath)
	if err != nil {
		return fmt.Errorf("read positions file: %w", err)
	}

	var raw []positionFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse positions file: %w", err)
	}

	positions := make([]market.OpenPosition, 0, len(raw))
	for _, p := range raw {
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

	s := risk.AggregateRiskMetrics(positions, balance)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("PORTFOLIO RISK")

	t.AppendRows([]table.Row{
		{"Open positions", s.OpenPositions},
		{"Total exposure", s.TotalExposure.StringFixed(2)},
		{"Unrealized P/L", s.UnrealizedPL.StringFixed(2)},
	})
	if s.LargestRiskInstrument != "" {
		t.AppendRows([]table.Row{
			{"Largest position risk", s.LargestPositionRiskPct.StringFixed(2) + "% of account"},
			{"Largest risk instrument", s.LargestRiskInstrument},
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()

	return nil
}
