package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"contactbook/internal/contacts/metrics"
	"contactbook/internal/contacts/models"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/requestcontext"
)

const tracerName = "contactbook/internal/commands"

// Fixed replies that do not come from a handler.
const (
	MsgBlank   = "Please enter a valid command."
	MsgInvalid = "Invalid command."
	MsgGoodbye = "Good bye!"
	MsgWelcome = "Welcome to the assistant bot!"
	Prompt     = "Enter a command: "
)

// HandlerFunc executes one command against the book and returns the text to
// show. Errors are turned into text by the Handler, never by the func itself.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

// Handler dispatches parsed commands to the contact operations.
type Handler struct {
	book         *models.AddressBook
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	upcomingDays int
	routes       map[string]HandlerFunc
}

type Option func(h *Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(h *Handler) {
		h.tracer = t
	}
}

// WithUpcomingDays sets the window used by "birthdays" without an argument.
func WithUpcomingDays(days int) Option {
	return func(h *Handler) {
		if days >= 0 {
			h.upcomingDays = days
		}
	}
}

// NewHandler constructs a Handler over book. A nil book starts empty.
func NewHandler(book *models.AddressBook, opts ...Option) *Handler {
	if book == nil {
		book = models.NewAddressBook()
	}
	h := &Handler{
		book:         book,
		logger:       slog.New(slog.DiscardHandler),
		tracer:       otel.Tracer(tracerName),
		upcomingDays: models.DefaultUpcomingDays,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.routes = map[string]HandlerFunc{
		"hello":         h.hello,
		"add":           h.addContact,
		"change":        h.changePhone,
		"phone":         h.showPhones,
		"all":           h.showAll,
		"add-birthday":  h.addBirthday,
		"birthdays":     h.birthdays,
		"remove-phone":  h.removePhone,
		"delete":        h.deleteContact,
		"show-birthday": h.showBirthday,
	}
	h.metrics.SetContacts(h.book.Len())
	return h
}

// Book returns the book the handler operates on.
func (h *Handler) Book() *models.AddressBook {
	return h.book
}

// Execute runs one command and always returns the text to print. Terminal
// commands are the session's concern and are reported as invalid here.
func (h *Handler) Execute(ctx context.Context, command string, args []string) string {
	if command == "" {
		return MsgBlank
	}
	fn, ok := h.routes[command]
	if !ok {
		h.logger.DebugContext(ctx, "unknown command",
			"command", command,
			"command_id", requestcontext.CommandID(ctx),
		)
		h.metrics.ObserveCommand("unknown", metrics.OutcomeInputError, time.Now())
		return MsgInvalid
	}
	return h.run(ctx, command, fn, args)
}

func (h *Handler) run(ctx context.Context, command string, fn HandlerFunc, args []string) string {
	start := time.Now()
	commandID := requestcontext.CommandID(ctx)
	ctx, span := h.tracer.Start(ctx, "command "+command, trace.WithAttributes(
		attribute.String("contactbook.command", command),
		attribute.String("contactbook.command_id", commandID),
		attribute.Int("contactbook.args", len(args)),
	))
	defer span.End()

	out, err := h.recovered(fn)(ctx, args)
	outcome := metrics.OutcomeOK
	if err != nil {
		out, outcome = Present(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		level := slog.LevelDebug
		if outcome == metrics.OutcomeUnexpected {
			level = slog.LevelError
		}
		h.logger.Log(ctx, level, "command failed",
			"command", command,
			"command_id", commandID,
			"outcome", outcome,
			"err", err,
		)
	} else {
		h.logger.DebugContext(ctx, "command executed",
			"command", command,
			"command_id", commandID,
			"outcome", outcome,
		)
	}

	h.metrics.ObserveCommand(command, outcome, start)
	h.metrics.SetContacts(h.book.Len())
	return out
}

// recovered turns a panic inside fn into an internal error.
func (h *Handler) recovered(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, args []string) (out string, err error) {
		defer func() {
			if v := recover(); v != nil {
				h.logger.LogAttrs(ctx, slog.LevelError, "panic occurred", slog.Any("recovered", v))
				err = dErrors.New(dErrors.CodeInternal, fmt.Sprint(v))
			}
		}()
		return fn(ctx, args)
	}
}

// Present converts a command error into console text and a metrics outcome.
// Input problems are shown as "Error: ..."; anything else is unexpected.
func Present(err error) (string, string) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeBadRequest, dErrors.CodeNotFound:
		return "Error: " + err.Error(), metrics.OutcomeInputError
	default:
		return "Unexpected error: " + err.Error(), metrics.OutcomeUnexpected
	}
}
