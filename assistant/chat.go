package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ovz/kassa"
	"github.com/ovz/kassa/renderer"
)

// Chat is the interactive cashier session: each operator line becomes a
// proposal that is applied to the ledger only after an explicit yes.
type Chat struct {
	w         io.Writer
	r         *bufio.Reader
	ledger    *kassa.Ledger
	assistant *Assistant
	// Render formats markdown before printing. Nil prints it raw.
	Render func(string) string
}

// NewChat creates a chat session over the given ledger.
//
// It takes an io.Writer for the session's output (e.g., os.Stdout) and an
// io.Reader for operator input (e.g., os.Stdin).
func NewChat(w io.Writer, r io.Reader, ledger *kassa.Ledger, assistant *Assistant) *Chat {
	return &Chat{
		w:         w,
		r:         bufio.NewReader(r),
		ledger:    ledger,
		assistant: assistant,
	}
}

const prompt = "kassa> "

// Run starts the interactive REPL session.
func (c *Chat) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(c.w, "Смарт-кассир на связи. Введите 'bye' для выхода.")

	for {
		fmt.Fprint(c.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the operator.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
		}

		if input == "bye" {
			return nil
		}

		if err := c.handle(ctx, input); err != nil {
			fmt.Fprintln(c.w, "Ошибка:", err)
		}
	}
}

// handle sends one operator line through the cashier model and drives the
// resulting proposal to a decision.
func (c *Chat) handle(ctx context.Context, input string) error {
	resp, err := c.assistant.ParseCommand(ctx, input, c.todayContext())
	if err != nil {
		return err
	}

	p := kassa.NewProposal(resp)
	if !p.Pending() {
		// Nothing to apply: just an answer.
		c.print(p.Display())
		return nil
	}

	c.print(renderer.ProposalMarkdown(p))
	fmt.Fprint(c.w, "Подтвердить? [y/n] ")
	answer, err := c.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		err = p.Confirm(c.ledger)
	default:
		p.Cancel()
	}
	c.print(p.Display())
	return err
}

// todayContext snapshots the current day's totals for the cashier model.
func (c *Chat) todayContext() Context {
	since := kassa.StartOfDay(kassa.Now())
	var sales, expenses int64
	for _, s := range c.ledger.ActiveSales(since) {
		sales += s.Total
	}
	for _, e := range c.ledger.ActiveExpenses(since) {
		expenses += e.Amount
	}
	return Context{
		SalesToday:    sales,
		ExpensesToday: expenses,
		Menu:          kassa.MenuPrompt(),
	}
}

func (c *Chat) print(md string) {
	if c.Render != nil {
		md = c.Render(md)
	}
	fmt.Fprintln(c.w, md)
}
