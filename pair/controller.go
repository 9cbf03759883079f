// Package pair keeps two linked amount fields in sync.
//
// Editing the active field converts its text and writes the formatted result
// into the other field. A suppress flag stops that programmatic write from
// starting another conversion.
package pair

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/rates"
)

// View receives every field write and label change made by a Controller
type View interface {
	SetText(side domain.Side, text string)
	SetRateLabel(label string)
}

// field one amount input and the currency selected for it
type field struct {
	text     string
	currency domain.Currency
}

// Controller owns the two fields, the active side and the suppress flag.
// It is driven by a single event loop and is not safe for concurrent use.
type Controller struct {
	service   exchange.Service
	formatter *format.Formatter
	logger    log.Logger
	view      View

	fields    map[domain.Side]*field
	active    domain.Side
	suppress  bool
	rateLabel string
}

// New constructs a Controller with from and to selected and no active field.
func New(service exchange.Service, formatter *format.Formatter, from domain.Currency, to domain.Currency, logger log.Logger) *Controller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	c := &Controller{
		service:   service,
		formatter: formatter,
		logger:    level.Debug(logger),
		fields: map[domain.Side]*field{
			domain.From: {currency: from},
			domain.To:   {currency: to},
		},
	}
	c.updateRateLabel()
	return c
}

// Attach registers view and replays the current state to it.
func (c *Controller) Attach(view View) {
	c.view = view
	if view == nil {
		return
	}
	view.SetText(domain.From, c.fields[domain.From].text)
	view.SetText(domain.To, c.fields[domain.To].text)
	view.SetRateLabel(c.rateLabel)
}

// Focus marks side as the field the user is editing.
func (c *Controller) Focus(side domain.Side) {
	if side != domain.None && c.fields[side] == nil {
		return
	}
	c.logger.Log("msg", "focus", "side", side)
	c.active = side
}

// Edit stores user text for side and handles the resulting change event.
func (c *Controller) Edit(side domain.Side, text string) {
	f, ok := c.fields[side]
	if !ok {
		return
	}
	f.text = text
	c.textChanged(side)
}

// Select changes the currency of side, recomputes the active conversion and the rate label.
func (c *Controller) Select(side domain.Side, currency domain.Currency) {
	f, ok := c.fields[side]
	if !ok {
		return
	}
	c.logger.Log("msg", "select", "side", side, "currency", currency)
	f.currency = currency
	c.convert()
	c.updateRateLabel()
}

// SelectLabel selects the currency named by a label like "Vietnam - Dong (VND)".
func (c *Controller) SelectLabel(side domain.Side, label string) {
	c.Select(side, rates.ParseLabel(label))
}

// Text current text of side
func (c *Controller) Text(side domain.Side) string {
	if f, ok := c.fields[side]; ok {
		return f.text
	}
	return ""
}

// Currency currency selected for side
func (c *Controller) Currency(side domain.Side) domain.Currency {
	if f, ok := c.fields[side]; ok {
		return f.currency
	}
	return ""
}

// Active the last focused side, domain.None before any focus
func (c *Controller) Active() domain.Side {
	return c.active
}

// RateLabel the current reference-rate label
func (c *Controller) RateLabel() string {
	return c.rateLabel
}

// textChanged handles a text-change event from either field
func (c *Controller) textChanged(side domain.Side) {
	if c.suppress {
		c.logger.Log("msg", "suppressed change", "side", side)
		return
	}
	if c.active == domain.None {
		return
	}
	c.convert()
}

// convert converts the active field and writes the result into the other one
func (c *Controller) convert() {
	if c.active == domain.None {
		return
	}
	from := c.fields[domain.From].currency
	to := c.fields[domain.To].currency
	target := c.active.Other()

	amount := exchange.ParseAmount(c.fields[c.active].text)
	result := c.service.Convert(amount, from, to, c.active)
	text := c.formatter.Format(float64(result), c.fields[target].currency)

	c.suppress = true
	defer func() { c.suppress = false }()
	c.write(target, text)
}

// write sets a field programmatically. Like a widget, this fires a change event.
func (c *Controller) write(side domain.Side, text string) {
	c.fields[side].text = text
	if c.view != nil {
		c.view.SetText(side, text)
	}
	c.textChanged(side)
}

func (c *Controller) updateRateLabel() {
	from := c.fields[domain.From].currency
	to := c.fields[domain.To].currency
	c.rateLabel = c.formatter.RateLabel(from, to, c.service.ReferenceRate(from, to))
	if c.view != nil {
		c.view.SetRateLabel(c.rateLabel)
	}
}
