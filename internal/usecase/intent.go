package usecase

import (
	"strings"

	"crypto-copilot/internal/domain/entity"
)

// CurrencyRule binds a currency to the keywords that select it.
type CurrencyRule struct {
	Currency entity.Currency
	Keywords []string
}

// WindowRule binds a time window to the keywords that select it.
type WindowRule struct {
	Window   entity.Window
	Keywords []string
}

// CurrencyRules is the match priority for currency keywords. Bitcoin is
// tested first, so a prompt naming both currencies resolves to bitcoin;
// bitcoin is also the default when nothing matches.
var CurrencyRules = []CurrencyRule{
	{entity.CurrencyBitcoin, []string{"bitcoin", "btc"}},
	{entity.CurrencyEthereum, []string{"ethereum", "eth"}},
}

// WindowRules is the match priority for window keywords. Windows are
// mutually exclusive per request; the first match wins and spot is the
// default.
var WindowRules = []WindowRule{
	{entity.WindowDay, []string{"24h", "24 hours"}},
	{entity.WindowWeek, []string{"7d", "7 days"}},
	{entity.WindowMonth, []string{"30d", "30 days"}},
}

// ExtractIntent classifies a prompt by case-insensitive substring matching
// against the rule tables. It is pure and total: every input yields an
// intent.
func ExtractIntent(message string) entity.Intent {
	prompt := strings.ToLower(message)

	intent := entity.Intent{
		Currency: entity.CurrencyBitcoin,
		Window:   entity.WindowSpot,
	}
	for _, rule := range CurrencyRules {
		if containsAny(prompt, rule.Keywords) {
			intent.Currency = rule.Currency
			break
		}
	}
	for _, rule := range WindowRules {
		if containsAny(prompt, rule.Keywords) {
			intent.Window = rule.Window
			break
		}
	}
	return intent
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
