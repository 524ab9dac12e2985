package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable ApplyEnv reads.
const EnvPrefix = "POSSIZE_"

// LoadEnv loads a dotenv file into the process environment. A missing file
// is not an error; variables already set are not overwritten.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays POSSIZE_* variables onto c. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"QUOTE_CURRENCY":   &c.Display.QuoteCurrency,
		"EXPORT_FORMAT":    &c.Export.Format,
		"DATE_LAYOUT":      &c.Export.DateLayout,
		"LOG_LEVEL":        &c.Logging.Level,
		"LOG_ENCODING":     &c.Logging.Encoding,
		"SERVER_ADDR":      &c.Server.Addr,
		"SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PRICE_PLACES":    &c.Display.PricePlaces,
		"MONEY_PLACES":    &c.Display.MoneyPlaces,
		"QUANTITY_PLACES": &c.Display.QuantityPlaces,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	floats := map[string]*float64{
		"MIN_RR":             &c.Policy.MinRR,
		"MAX_POSITION_VALUE": &c.Policy.MaxPositionValue,
		"ACCOUNT_BALANCE":    &c.Policy.AccountBalance,
		"MAX_RISK_PCT":       &c.Policy.MaxRiskPct,
		"MAX_LEVERAGE":       &c.Policy.MaxLeverage,
	}
	for key, dst := range floats {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
	}

	return nil
}
