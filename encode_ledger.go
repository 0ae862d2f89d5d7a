package deals

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeLedger decodes a ledger from its JSON form: an array of deals.
// An empty input is an empty ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewLedger(), nil
	}
	var deals []Deal
	if err := json.Unmarshal(data, &deals); err != nil {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			return nil, fmt.Errorf("invalid ledger at offset %d: %w", syntax.Offset, err)
		}
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	return &Ledger{deals: deals}, nil
}

// EncodeLedger writes the ledger as an indented JSON array, in storage
// order, so that it remains easy to read and diff.
func EncodeLedger(w io.Writer, l *Ledger) error {
	deals := l.deals
	if deals == nil {
		deals = []Deal{} // "[]" rather than "null"
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(deals); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
