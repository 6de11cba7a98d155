package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

// Notifier prints messages instead of delivering them, for dry runs. Sends
// may come from concurrent workers, so writes are serialized.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a console notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Send prints the text body framed the way the dry-run flag documents.
func (n *Notifier) Send(ctx context.Context, to ports.Recipient, msg ports.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.out, "=== Email to %s (%s) ===\n", to.Email, to.Name)
	fmt.Fprintln(n.out, msg.Text)
	fmt.Fprintln(n.out, strings.Repeat("=", 50))
	fmt.Fprintln(n.out)
	return nil
}

var _ ports.Notifier = (*Notifier)(nil)
