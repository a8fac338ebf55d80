package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tekoa-labs/riskcore/risk"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Gate an already-sized trade against portfolio limits",
	Long: `Run only the validation stage: position-count limit first, then the
daily-loss limit.

Example:
  riskcore check --size 100000 --open-positions 4 --max-open 5 \
    --realized-loss 120 --max-daily-loss 500`,
	RunE: runCheck,
}

var (
	checkSize         string
	checkOpenCount    int
	checkMaxOpen      int
	checkRealizedLoss string
	checkMaxDailyLoss string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkSize, "size", "", "proposed position size (required)")
	checkCmd.Flags().IntVar(&checkOpenCount, "open-positions", 0, "currently open positions")
	checkCmd.Flags().IntVar(&checkMaxOpen, "max-open", 5, "max open positions")
	checkCmd.Flags().StringVar(&checkRealizedLoss, "realized-loss", "0", "realized loss today")
	checkCmd.Flags().StringVar(&checkMaxDailyLoss, "max-daily-loss", "500", "max daily loss")
	checkCmd.MarkFlagRequired("size")
}

func runCheck(cmd *cobra.Command, args []string) error {
	size, err := parseDecimalFlag("size", checkSize)
	if err != nil {
		return err
	}
	realizedLoss, err := parseDecimalFlag("realized-loss", checkRealizedLoss)
	if err != nil {
		return err
	}
	maxDailyLoss, err := parseDecimalFlag("max-daily-loss", checkMaxDailyLoss)
	if err != nil {
		return err
	}

	p := risk.PortfolioState{
		OpenPositions:     checkOpenCount,
		RealizedLossToday: realizedLoss,
	}
	lim := risk.Limits{
		MaxOpenPositions: checkMaxOpen,
		MaxDailyLoss:     maxDailyLoss,
	}

	approved, err := risk.ValidateTrade(size, p, lim)
	if err != nil {
		switch {
		case errors.Is(err, risk.ErrPositionLimitExceeded),
			errors.Is(err, risk.ErrDailyLossLimitExceeded):
			fmt.Printf("✗ REJECTED: %v\n", err)
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("✓ APPROVED: size %s\n", approved)
	return nil
}
