package messenger

import (
	"bufio"
	"context"
	"io"
	"strings"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/store"

	"github.com/fatih/color"
)

const ConsoleUserID = "console"

// Console is a terminal chat: every stdin line is a message from a single
// local user, replies are printed in color.
type Console struct {
	inbox  *Inbox
	in     io.Reader
	out    io.Writer
	logger logger.ILogger

	bot   *color.Color
	media *color.Color
	you   *color.Color
}

func NewConsole(inbox *Inbox, in io.Reader, out io.Writer, log logger.ILogger) *Console {
	return &Console{
		inbox:  inbox,
		in:     in,
		out:    out,
		logger: log,
		bot:    color.New(color.FgCyan),
		media:  color.New(color.FgMagenta),
		you:    color.New(color.FgGreen, color.Bold),
	}
}

// Start reads input lines until ctx is done or input ends.
func (c *Console) Start(ctx context.Context) {
	go func() {
		scanner := bufio.NewScanner(c.in)
		c.prompt()
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				if err := c.inbox.Push(ctx, Message{UserID: ConsoleUserID, Text: line}); err != nil {
					c.logger.Error("Console", "Failed to queue input", map[string]interface{}{"error": err.Error()})
				}
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Error("Console", "Input closed with error", map[string]interface{}{"error": err.Error()})
		}
	}()
}

func (c *Console) prompt() {
	c.you.Fprint(c.out, "tú> ")
}

func (c *Console) ReadLatest(ctx context.Context) (*Message, error) {
	return c.inbox.ReadLatest(ctx)
}

func (c *Console) SendText(_ context.Context, _ string, text string) error {
	c.bot.Fprintf(c.out, "\nbot> %s\n", text)
	c.prompt()
	return nil
}

func (c *Console) SendMedia(_ context.Context, _ string, m store.MediaRef) error {
	c.media.Fprintf(c.out, "\n🖼️  %s: %s\n", m.Name, m.URL)
	c.prompt()
	return nil
}

var _ Messenger = (*Console)(nil)
