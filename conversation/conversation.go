// Package conversation implements the step by step collection of a new
// deal: date, name, amount, fee, rate then members.
//
// A Conversation does not know about its transport. The interactive
// terminal uses Run, other front-ends call Prompt and Answer directly.
package conversation

import (
	"errors"
	"strings"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
)

// ErrCancelled is returned once the user has cancelled the conversation.
var ErrCancelled = errors.New("cancelled")

// ErrIncomplete is returned by Commit when some fields are still missing.
var ErrIncomplete = errors.New("conversation is not complete")

var prompts = map[deals.Field]string{
	deals.FieldDate:    "Deposit date (e.g. 21.07):",
	deals.FieldName:    "Deposit name (e.g. SBP, QR):",
	deals.FieldAmount:  "Deposit amount in local currency:",
	deals.FieldFee:     "Fee in %:",
	deals.FieldRate:    "Exchange rate (local currency per reference unit):",
	deals.FieldMembers: "Members (e.g. #10 #12 #14):",
}

var hints = map[deals.Field]string{
	deals.FieldDate:    "⚠️ Invalid date, use D.M or today",
	deals.FieldName:    "⚠️ A name is required",
	deals.FieldAmount:  "⚠️ Enter a positive number.",
	deals.FieldFee:     "⚠️ Enter a number between 0 and 100.",
	deals.FieldRate:    "⚠️ Invalid rate",
	deals.FieldMembers: "⚠️ Specify at least one member with #",
}

// Conversation collects the raw inputs of one deal.
type Conversation struct {
	raw       deals.RawDeal
	step      int // index in deals.Fields
	today     date.Date
	cancelled bool
}

// New starts a conversation, 'today' resolves the "today" keyword and the
// year of D.M dates.
func New(today date.Date) *Conversation {
	return &Conversation{today: today}
}

// Field returns the field currently asked for. ok is false once the
// conversation is over.
func (c *Conversation) Field() (f deals.Field, ok bool) {
	if c.Done() || c.cancelled {
		return 0, false
	}
	return deals.Fields[c.step], true
}

// Prompt returns the question for the current field, or "" when there is
// nothing left to ask.
func (c *Conversation) Prompt() string {
	f, ok := c.Field()
	if !ok {
		return ""
	}
	return prompts[f]
}

// Done reports whether all the fields have been collected.
func (c *Conversation) Done() bool { return c.step >= len(deals.Fields) }

// Cancelled reports whether the user cancelled.
func (c *Conversation) Cancelled() bool { return c.cancelled }

// Cancel ends the conversation without saving anything.
func (c *Conversation) Cancel() { c.cancelled = true }

// Raw returns the inputs collected so far.
func (c *Conversation) Raw() deals.RawDeal { return c.raw }

// Answer records the reply to the current prompt.
//
// A valid reply moves to the next field. An invalid one returns a
// *deals.FieldError and the same field is asked again, the other fields
// are kept. "cancel" or "/cancel" ends the conversation with ErrCancelled.
func (c *Conversation) Answer(text string) error {
	if isCancel(text) {
		c.Cancel()
	}
	f, ok := c.Field()
	if !ok {
		if c.cancelled {
			return ErrCancelled
		}
		return nil
	}
	set(&c.raw, f, text)
	if err := c.raw.ParseField(f, c.today); err != nil {
		return err
	}
	c.step++
	return nil
}

// Commit saves the collected deal into b. Dates resolve against the
// conversation's today, not b's, so the saved deal is the one validated.
func (c *Conversation) Commit(b *deals.Book) (deals.Deal, error) {
	switch {
	case c.cancelled:
		return deals.Deal{}, ErrCancelled
	case !c.Done():
		return deals.Deal{}, ErrIncomplete
	}
	in, err := c.raw.Parse(c.today)
	if err != nil {
		return deals.Deal{}, err
	}
	return b.Add(in)
}

// Hint returns a short message explaining why err rejected a reply.
func Hint(err error) string {
	var fe *deals.FieldError
	if errors.As(err, &fe) {
		return hints[fe.Field]
	}
	return "⚠️ " + err.Error()
}

func isCancel(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "cancel", "/cancel":
		return true
	}
	return false
}

func set(raw *deals.RawDeal, f deals.Field, text string) {
	switch f {
	case deals.FieldDate:
		raw.Date = text
	case deals.FieldName:
		raw.Name = text
	case deals.FieldAmount:
		raw.Amount = text
	case deals.FieldFee:
		raw.Fee = text
	case deals.FieldRate:
		raw.Rate = text
	case deals.FieldMembers:
		raw.Members = text
	}
}
