package conversation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/etnz/deals"
)

// Run drives a conversation over a line oriented terminal: it writes
// each prompt to w, reads the reply from r and saves the deal into b.
//
// End of input before the last field behaves like a cancel.
func Run(r io.Reader, w io.Writer, b *deals.Book) (deals.Deal, error) {
	c := New(b.Today())
	scanner := bufio.NewScanner(r)
	for !c.Done() {
		fmt.Fprintln(w, c.Prompt())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return deals.Deal{}, fmt.Errorf("reading answer: %w", err)
			}
			c.Cancel()
			return deals.Deal{}, ErrCancelled
		}
		if err := c.Answer(scanner.Text()); err != nil {
			if c.Cancelled() {
				return deals.Deal{}, err
			}
			fmt.Fprintln(w, Hint(err))
		}
	}
	return c.Commit(b)
}
