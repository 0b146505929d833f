package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/muesli/termenv"
)

var ErrInputClosed = types.NewGameError(types.ErrInvalidState, "console input closed")

// Options tune how the console paces and shows a round
type Options struct {
	// Clock drives the pauses; nil means the real clock
	Clock quartz.Clock
	// Pace is the pause after each dealt card and before a continue prompt
	Pace time.Duration
	// ShortPace is the pause after a card the dealer draws
	ShortPace time.Duration
	// HideHoleCard keeps the dealer's second card face down until settlement
	HideHoleCard bool
	Logger       *logging.Logger
}

// Console is the line-based table surface. It reads answers from one
// reader, writes the table to one writer, and implements the engine's
// Prompter and Observer.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	term    *termenv.Output
	styles  styles
	clock   quartz.Clock
	opts    Options
	logger  *logging.Logger

	// turn is the player whose turn header was last printed
	turn *blackjack.Player
	// err is the first input failure seen where it could not be returned
	err error
}

var (
	_ blackjack.Prompter = (*Console)(nil)
	_ blackjack.Observer = (*Console)(nil)
)

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default
	}

	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		term:    termenv.NewOutput(out),
		styles:  newStyles(lipgloss.NewRenderer(out)),
		clock:   opts.Clock,
		opts:    opts,
		logger:  opts.Logger.WithPrefix("console"),
	}
}

// ReadLine returns the next line of input without its line ending
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			c.err = types.WrapError(types.ErrInvalidState, "reading console input", err)
		} else {
			c.err = ErrInputClosed
		}
		return "", c.err
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

// Say writes one line
func (c *Console) Say(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Blank writes an empty line
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}

// Error writes a validation message
func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Header writes a highlighted title line
func (c *Console) Header(title string) {
	fmt.Fprintln(c.out, c.styles.Header.Render(" "+title+" "))
}

// Clear wipes the terminal
func (c *Console) Clear() {
	c.term.ClearScreen()
}

// Pause waits delay, shows msg with the continue prompt, waits for a line of
// input and clears the screen
func (c *Console) Pause(ctx context.Context, msg string, delay time.Duration) error {
	if err := c.wait(ctx, delay); err != nil {
		return err
	}

	prompt := "Enter any key to continue."
	if msg != "" {
		prompt = msg + " " + prompt
	}
	c.Blank()
	fmt.Fprintln(c.out, c.styles.Prompt.Render(prompt))

	if _, err := c.ReadLine(ctx); err != nil {
		return err
	}
	c.Clear()
	return nil
}

// wait blocks for d on the console clock
func (c *Console) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := c.clock.NewTimer(d, "console", "wait")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Err returns the first input failure the console could not report directly
func (c *Console) Err() error {
	return c.err
}

// remember keeps the first failure from an Observer callback, which has no
// error return
func (c *Console) remember(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
	if err != nil {
		c.logger.Debug("Console failure: %v", err)
	}
}
