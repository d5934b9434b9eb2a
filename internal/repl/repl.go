package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/soundbal/balance-tray/internal/balance"
)

// Controller is the surface the REPL drives.
type Controller interface {
	GetBalance() (balance.Intensity, error)
	SetBalance(balance.Intensity) error
}

// Run reads "L/R" lines from in and applies each valid balance, echoing the
// previous and new values. A blank line exits. Invalid input re-prompts
// without touching the endpoint.
func Run(ctrl Controller, in io.Reader, out io.Writer) error {
	previous, err := ctrl.GetBalance()
	if err != nil {
		return fmt.Errorf("failed to read current balance: %w", err)
	}
	fmt.Fprintf(out, "Previous balance: %d/%d\n", previous.Left, previous.Right)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Input (L/R): ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(out, "Exiting.")
			break
		}

		next, ok := balance.ParseIntensity(line)
		if !ok {
			fmt.Fprintln(out, "  Invalid format; please use 'L/R' with integers (e.g. '40/8').")
			continue
		}

		fmt.Fprintf(out, "  Applying balance: %d/%d -> %d/%d\n",
			previous.Left, previous.Right, next.Left, next.Right)
		if err := ctrl.SetBalance(next); err != nil {
			return fmt.Errorf("failed to apply balance: %w", err)
		}
		previous = next
	}

	return scanner.Err()
}
