package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/eliana/internal/responder"
)

const (
	welcomeFormat    = "Welcome to %s Alpha0.2. Type 'bye bye' to end the conversation."
	prompt           = "You: "
	endCommand       = "bye bye"
	endReply         = "Okay, bye!"
	cancelCommand    = "nevermind"
	canceledReply    = "Learning mode canceled."
	nothingToCancel  = "No action is in progress to cancel."
	interruptMessage = "Received interrupt signal, exiting..."
)

var errEnd = errors.New("end")

//go:generate mockgen -source=chat.go -destination=../mocks/cli/mock_responder.go -package=mock_cli Responder

// Responder answers one chat line.
type Responder interface {
	Handle(session *responder.Session, input string) (string, error)
}

// ChatCLI is the interactive chat shell.
type ChatCLI struct {
	name         string
	responder    Responder
	session      *responder.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewChatCLI creates a chat shell on stdin and stdout that replies as name.
func NewChatCLI(name string, r Responder) *ChatCLI {
	return &ChatCLI{
		name:         name,
		responder:    r,
		session:      responder.NewSession(),
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// Run prints the welcome banner and exchanges lines until "bye bye", end of input or an interrupt.
func (cli *ChatCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	if _, err := cli.italic.Fprintln(cli.stdoutWriter, fmt.Sprintf(welcomeFormat, cli.name)); err != nil {
		return fmt.Errorf("failed to write the welcome message > %w", err)
	}

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Exchange(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, interruptMessage)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Exchange reads one line and writes exactly one reply.
// It returns errEnd when the conversation is over.
func (cli *ChatCLI) Exchange(ctx context.Context) error {
	if _, err := cli.bold.Fprint(cli.stdoutWriter, prompt); err != nil {
		return fmt.Errorf("failed to write the prompt > %w", err)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("stdinReader.ReadString() > %w", err)
		}
		if line == "" {
			_, _ = fmt.Fprintln(cli.stdoutWriter)
			return errEnd
		}
	}
	input := strings.TrimRight(line, "\r\n")

	switch {
	case strings.EqualFold(input, endCommand):
		if err := cli.reply(endReply); err != nil {
			return err
		}
		return errEnd
	case strings.EqualFold(input, cancelCommand):
		if cli.session.Cancel() {
			return cli.reply(canceledReply)
		}
		return cli.reply(nothingToCancel)
	}

	reply, err := cli.responder.Handle(cli.session, input)
	if err != nil {
		return fmt.Errorf("responder.Handle() > %w", err)
	}
	return cli.reply(reply)
}

func (cli *ChatCLI) reply(message string) error {
	if _, err := cli.bold.Fprintf(cli.stdoutWriter, "%s: ", cli.name); err != nil {
		return fmt.Errorf("failed to write a reply > %w", err)
	}
	if _, err := fmt.Fprintln(cli.stdoutWriter, message); err != nil {
		return fmt.Errorf("failed to write a reply > %w", err)
	}
	return nil
}
