package cmd

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (defaults to $DCS_LEDGER_FILE or deals.json)")
	storeKind  = flag.String("store", "", "Ledger storage, either file or sqlite (defaults to $DCS_STORE or file)")
	strict     = flag.Bool("strict", false, "Fail instead of starting empty when the ledger file cannot be read")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of styled text")
)

// Config holds the application configuration.
type Config struct {
	LedgerFile        string
	Store             string
	Strict            bool
	Addr              string
	LocalCurrency     string
	ReferenceCurrency string
	Model             string
}

// LoadConfig reads the configuration from the environment and a .env file
// if present. Command line flags take precedence.
func LoadConfig() Config {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(EnvLedgerFile, "deals.json")
	v.SetDefault(EnvStore, StoreFile)
	v.SetDefault(EnvStrict, false)
	v.SetDefault(EnvAddr, ":8080")
	v.SetDefault(EnvLocalCurrency, "RUB")
	v.SetDefault(EnvReferenceCurrency, "USD")
	v.SetDefault(EnvModel, "gemini-2.5-flash")
	v.AutomaticEnv()

	cfg := Config{
		LedgerFile:        v.GetString(EnvLedgerFile),
		Store:             v.GetString(EnvStore),
		Strict:            v.GetBool(EnvStrict),
		Addr:              v.GetString(EnvAddr),
		LocalCurrency:     v.GetString(EnvLocalCurrency),
		ReferenceCurrency: v.GetString(EnvReferenceCurrency),
		Model:             v.GetString(EnvModel),
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *storeKind != "" {
		cfg.Store = *storeKind
	}
	if *strict {
		cfg.Strict = true
	}
	return cfg
}
