package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"contactbook/internal/contacts/models"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/requestcontext"
)

const maxLineBytes = 64 * 1024

// MsgTooLong answers a line longer than maxLineBytes.
const MsgTooLong = "Error: Command is too long."

// Saver persists the whole book when the session ends.
type Saver interface {
	Save(ctx context.Context, book *models.AddressBook) error
}

// Session is the read-eval-print loop over one Handler.
type Session struct {
	handler *Handler
	saver   Saver
	logger  *slog.Logger
	newID   func() string
}

type SessionOption func(s *Session)

func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithIDGenerator replaces the uuid command id source.
func WithIDGenerator(fn func() string) SessionOption {
	return func(s *Session) {
		s.newID = fn
	}
}

func NewSession(handler *Handler, saver Saver, opts ...SessionOption) *Session {
	s := &Session{
		handler: handler,
		saver:   saver,
		logger:  slog.New(slog.DiscardHandler),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run greets, then reads commands from in until close, exit or end of input,
// writing one reply per command to out. The book is saved once the loop ends;
// a failed save is reported on out and returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, MsgWelcome)

	reader := bufio.NewReader(in)
	var readErr error
	for {
		fmt.Fprint(out, Prompt)
		line, tooLong, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
				s.logger.ErrorContext(ctx, "failed to read input", "err", err)
			}
			break
		}
		if tooLong {
			s.logger.WarnContext(ctx, "input line too long", "limit", maxLineBytes)
			fmt.Fprintln(out, MsgTooLong)
			continue
		}
		command, args := Parse(line)
		if IsExit(command) {
			fmt.Fprintln(out, MsgGoodbye)
			break
		}
		cmdCtx := requestcontext.WithCommandID(ctx, s.newID())
		fmt.Fprintln(out, s.handler.Execute(cmdCtx, command, args))
	}

	book := s.handler.Book()
	if err := s.saver.Save(ctx, book); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to save address book")
		s.logger.ErrorContext(ctx, "failed to save address book", "err", err)
		text, _ := Present(err)
		fmt.Fprintln(out, text)
		return err
	}
	s.logger.InfoContext(ctx, "address book saved", "contacts", book.Len())

	if readErr != nil {
		return fmt.Errorf("read input: %w", readErr)
	}
	return nil
}

// readLine returns the next line without its terminator. A line over
// maxLineBytes is consumed to its end and reported with tooLong set.
func readLine(r *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
