package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"crypto-copilot/internal/domain/entity"
)

// CoinGecko is the REST adapter for the CoinGecko quoting API. Every call
// is a fresh round trip; nothing is cached or retried.
type CoinGecko struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Entry
}

func NewCoinGecko(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *CoinGecko {
	return &CoinGecko{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.WithField("component", "coingecko"),
	}
}

// CurrentPrice fetches the USD spot price. known is false when the
// provider answered without a quote for the currency.
func (c *CoinGecko) CurrentPrice(ctx context.Context, currency entity.Currency) (float64, bool, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.baseURL, currency)

	var quotes map[string]map[string]float64
	if err := c.getJSON(ctx, url, &quotes); err != nil {
		return 0, false, err
	}

	usd, known := quotes[string(currency)]["usd"]
	c.logger.WithFields(logrus.Fields{
		"currency": currency,
		"known":    known,
	}).Debug("fetched spot price")
	return usd, known, nil
}

// History fetches the chronological USD series covering the given number
// of days.
func (c *CoinGecko) History(ctx context.Context, currency entity.Currency, days int) (entity.PriceSeries, error) {
	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d", c.baseURL, currency, days)

	var chart struct {
		Prices [][2]float64 `json:"prices"`
	}
	if err := c.getJSON(ctx, url, &chart); err != nil {
		return nil, err
	}

	series := make(entity.PriceSeries, 0, len(chart.Prices))
	for _, sample := range chart.Prices {
		series = append(series, entity.PricePoint{
			TimestampMillis: int64(sample[0]),
			PriceUSD:        sample[1],
		})
	}
	c.logger.WithFields(logrus.Fields{
		"currency": currency,
		"days":     days,
		"samples":  len(series),
	}).Debug("fetched market chart")
	return series, nil
}

func (c *CoinGecko) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
