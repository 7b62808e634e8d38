package entity

// Currency is a canonical CoinGecko coin identifier.
type Currency string

const (
	CurrencyBitcoin  Currency = "bitcoin"
	CurrencyEthereum Currency = "ethereum"
)

// DisplayName returns the full name used in chat replies.
func (c Currency) DisplayName() string {
	switch c {
	case CurrencyEthereum:
		return "Ethereum (ETH)"
	default:
		return "Bitcoin (BTC)"
	}
}

// Window is the time range a prompt asks about. Spot means the current
// price with no historical component.
type Window string

const (
	WindowSpot  Window = "spot"
	WindowDay   Window = "24h"
	WindowWeek  Window = "7d"
	WindowMonth Window = "30d"
)

// Historical reports whether the window needs a price series.
func (w Window) Historical() bool { return w != WindowSpot }

// Days maps the window onto the provider's market-chart range parameter.
func (w Window) Days() int {
	switch w {
	case WindowDay:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	default:
		return 0
	}
}

// Phrase is the human wording of the window used in replies.
func (w Window) Phrase() string {
	switch w {
	case WindowDay:
		return "24 hours"
	case WindowWeek:
		return "7 days"
	case WindowMonth:
		return "30 days"
	default:
		return "moment"
	}
}

// Intent is the classified meaning of a user prompt.
type Intent struct {
	Currency Currency
	Window   Window
}
