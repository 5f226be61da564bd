package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"contactbook/internal/contacts/models"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/requestcontext"
)

const ruler = "--------------------"

func requireArgs(args []string, n int) error {
	if len(args) < n {
		return dErrors.New(dErrors.CodeBadRequest, "Missing arguments.")
	}
	return nil
}

func (h *Handler) find(name string) (*models.Record, error) {
	r, ok := h.book.Find(name)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "Contact %s not found in AddressBook.", name)
	}
	return r, nil
}

func (h *Handler) hello(context.Context, []string) (string, error) {
	return "How can I help you?", nil
}

// addContact creates the contact on first use and appends the phone. The phone
// is validated before anything is created.
func (h *Handler) addContact(_ context.Context, args []string) (string, error) {
	if len(args) < 2 || !models.IsDigits(args[1]) {
		return "", dErrors.New(dErrors.CodeValidation, "Please provide both name and a valid phone number.")
	}
	name, phone := args[0], args[1]
	if _, err := models.NewPhone(phone); err != nil {
		return "", err
	}

	if r, ok := h.book.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	r, err := models.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	h.book.AddRecord(r)
	return "Contact added.", nil
}

func (h *Handler) changePhone(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	r, err := h.find(name)
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number %s changed to %s for contact %s.", oldPhone, newPhone, name), nil
}

func (h *Handler) showPhones(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	r, err := h.find(args[0])
	if err != nil {
		return "", err
	}
	phones := r.PhoneNumbers()
	if len(phones) == 0 {
		return fmt.Sprintf("Contact %s has no phones.", r.Name()), nil
	}
	return fmt.Sprintf("Contact %s's phones: %s", r.Name(), strings.Join(phones, ", ")), nil
}

func (h *Handler) showAll(context.Context, []string) (string, error) {
	if h.book.Len() == 0 {
		return "AddressBook is empty.", nil
	}
	var b strings.Builder
	b.WriteString("All contacts:\n")
	for _, r := range h.book.Records() {
		b.WriteString(r.String())
		b.WriteString("\n")
		b.WriteString(ruler)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func (h *Handler) addBirthday(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, birthday := args[0], args[1]
	r, err := h.find(name)
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday %s added for contact %s.", birthday, name), nil
}

func (h *Handler) birthdays(ctx context.Context, args []string) (string, error) {
	days := h.upcomingDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", dErrors.Newf(dErrors.CodeValidation, "Days must be a whole number, got %q.", args[0])
		}
		days = n
	}

	upcoming, err := h.book.UpcomingBirthdays(requestcontext.Now(ctx), days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", days), nil
	}

	var b strings.Builder
	b.WriteString("Upcoming birthdays:\n")
	for _, r := range upcoming {
		bd, _ := r.Birthday()
		fmt.Fprintf(&b, "%s: %s\n", r.Name(), bd)
	}
	return strings.TrimSpace(b.String()), nil
}

func (h *Handler) removePhone(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]
	r, err := h.find(name)
	if err != nil {
		return "", err
	}
	r.RemovePhone(phone)
	return fmt.Sprintf("Phone %s removed from contact %s.", phone, name), nil
}

func (h *Handler) deleteContact(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	if _, err := h.find(args[0]); err != nil {
		return "", err
	}
	h.book.Delete(args[0])
	return fmt.Sprintf("Contact %s deleted.", args[0]), nil
}

func (h *Handler) showBirthday(_ context.Context, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	r, err := h.find(args[0])
	if err != nil {
		return "", err
	}
	bd, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("Contact %s has no birthday.", r.Name()), nil
	}
	return fmt.Sprintf("Contact %s's birthday: %s", r.Name(), bd), nil
}
