package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tekoa-labs/riskcore/config"
	"github.com/tekoa-labs/riskcore/journal"
)

// loadConfig returns the file config when --config was given, defaults
// otherwise.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// openJournal builds the journal backend named by the config.
func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.DecisionsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "none", "":
		return journal.Nop{}, nil
	}
	return nil, fmt.Errorf("unknown journal type: %s", cfg.Journal.Type)
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
