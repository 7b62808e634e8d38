package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"crypto-copilot/internal/copilot"
	"crypto-copilot/internal/domain/entity"
	"crypto-copilot/internal/domain/repository"
)

// Orchestrator assembles one chat turn: classify the verified prompt,
// fetch price data, build the reply sentence, then emit the event
// sequence through a sink.
type Orchestrator struct {
	prices repository.PriceSource
	logger *logrus.Entry
}

func NewOrchestrator(prices repository.PriceSource, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		prices: prices,
		logger: logger.WithField("component", "orchestrator"),
	}
}

// priceFmt renders USD amounts with en-US grouping, e.g. 2500.5 -> 2,500.50.
var priceFmt = message.NewPrinter(language.AmericanEnglish)

// Respond classifies the prompt and produces the reply sentence. Provider
// failures surface as wrapped entity errors; a missing quote or a
// degenerate series yields an apologetic reply instead of an error.
func (o *Orchestrator) Respond(ctx context.Context, prompt string) (string, error) {
	intent := ExtractIntent(prompt)
	o.logger.WithFields(logrus.Fields{
		"currency": intent.Currency,
		"window":   intent.Window,
	}).Info("intent classified")

	if intent.Window.Historical() {
		return o.changeReply(ctx, intent.Currency, intent.Window)
	}
	return o.spotReply(ctx, intent.Currency)
}

func (o *Orchestrator) spotReply(ctx context.Context, currency entity.Currency) (string, error) {
	price, known, err := o.prices.CurrentPrice(ctx, currency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrPriceUnavailable, err)
	}

	name := currency.DisplayName()
	if !known {
		return fmt.Sprintf("Sorry, I couldn't fetch the current price of %s at the moment.", name), nil
	}
	return priceFmt.Sprintf("The current price of %s is $%.2f.", name, price), nil
}

func (o *Orchestrator) changeReply(ctx context.Context, currency entity.Currency, window entity.Window) (string, error) {
	series, err := o.prices.History(ctx, currency, window.Days())
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrHistoryUnavailable, err)
	}

	name := currency.DisplayName()
	change, ok := series.PercentChange()
	if !ok {
		return fmt.Sprintf("Sorry, I couldn't determine how the price of %s has changed in the last %s.", name, window.Phrase()), nil
	}
	return fmt.Sprintf("The price of %s has changed by %.2f%% in the last %s.", name, change, window.Phrase()), nil
}

// Emit writes the success sequence Ack, Text, Done one event at a time. A
// write failure means the client went away; emission stops there.
func (o *Orchestrator) Emit(reply string, sink copilot.EventSink) error {
	for _, event := range []copilot.Event{copilot.Ack(), copilot.Text(reply), copilot.Done()} {
		if err := sink.Send(event); err != nil {
			return err
		}
	}
	return nil
}
