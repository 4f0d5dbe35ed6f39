package model

// Default settings values, matching a fresh ledger before any mutation.
const (
	DefaultBudget   = 5000.0
	DefaultCurrency = "₹"
)

// Settings holds the ledger's financial preferences. Currency is purely
// a display symbol and never influences computation.
type Settings struct {
	Currency string  `json:"currency"`
	Budget   float64 `json:"budget"`
}

// DefaultSettings returns the settings of a fresh ledger.
func DefaultSettings() Settings {
	return Settings{
		Budget:   DefaultBudget,
		Currency: DefaultCurrency,
	}
}

// KnownCurrency is a currency symbol offered by the CLI for selection.
// SetCurrency accepts any symbol; this list only drives help output.
type KnownCurrency struct {
	Symbol string
	Name   string
}

// KnownCurrencies returns the currency symbols the CLI suggests.
func KnownCurrencies() []KnownCurrency {
	return []KnownCurrency{
		{Symbol: "₹", Name: "Indian Rupee"},
		{Symbol: "$", Name: "US Dollar"},
		{Symbol: "€", Name: "Euro"},
		{Symbol: "£", Name: "British Pound"},
		{Symbol: "¥", Name: "Japanese Yen"},
	}
}
