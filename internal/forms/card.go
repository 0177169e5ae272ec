// Package forms holds the interactive card entry form shared by the CLI and
// the TUI, plus the field validators both use.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"kartasist/internal/model"

	"github.com/charmbracelet/huh"
)

// CardValues holds card fields as form-editable strings. Numeric fields are
// validated during entry and parsed once the form completes.
type CardValues struct {
	id    string
	name  string
	bank  string
	limit string
	used  string
	due   string
	stmt  string
}

// NewCardValues seeds the form from an existing card. A card with an empty
// ID produces an "Add card" form; one with an ID produces "Edit card".
func NewCardValues(c model.Card) CardValues {
	v := CardValues{
		id:   c.ID,
		name: c.Name,
		bank: c.Bank,
		due:  strconv.Itoa(c.DueDay),
		stmt: strconv.Itoa(c.StatementDay),
	}
	if c.TotalLimit != 0 {
		v.limit = strconv.FormatFloat(c.TotalLimit, 'f', -1, 64)
	}
	if c.UsedAmount != 0 {
		v.used = strconv.FormatFloat(c.UsedAmount, 'f', -1, 64)
	}
	return v
}

// Form builds the huh form bound to these values.
func (v *CardValues) Form() *huh.Form {
	title := "Add card"
	if v.id != "" {
		title = "Edit card"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().Title("Card name").Value(&v.name).Validate(NotBlank("card name")),
			huh.NewInput().Title("Bank").Value(&v.bank).Validate(NotBlank("bank")),
			huh.NewInput().Title("Total limit").Value(&v.limit).Validate(ValidAmount(true)),
			huh.NewInput().Title("Used amount").Value(&v.used).Validate(ValidAmount(true)),
			huh.NewInput().Title("Due day (1-31)").Value(&v.due).Validate(ValidDay),
			huh.NewInput().Title("Statement day (1-31)").Value(&v.stmt).Validate(ValidDay),
		),
	).WithShowHelp(false)
}

// Card parses the accepted form values. Validation already ran, so parse
// errors reduce to zero values.
func (v *CardValues) Card() model.Card {
	limit, _ := strconv.ParseFloat(strings.TrimSpace(v.limit), 64)
	used, _ := strconv.ParseFloat(strings.TrimSpace(v.used), 64)
	due, _ := strconv.Atoi(strings.TrimSpace(v.due))
	stmt, _ := strconv.Atoi(strings.TrimSpace(v.stmt))
	return model.Card{
		ID:           v.id,
		Name:         strings.TrimSpace(v.name),
		Bank:         strings.TrimSpace(v.bank),
		TotalLimit:   limit,
		UsedAmount:   used,
		DueDay:       due,
		StatementDay: stmt,
	}
}

// NotBlank rejects empty or whitespace-only input.
func NotBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// ValidAmount accepts a non-negative number. With allowEmpty, a blank entry
// parses as zero.
func ValidAmount(allowEmpty bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if allowEmpty {
				return nil
			}
			return errors.New("amount is required")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if v < 0 {
			return errors.New("cannot be negative")
		}
		return nil
	}
}

// ValidDay accepts a day of month between 1 and 31.
func ValidDay(s string) error {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a day of month")
	}
	if d < 1 || d > 31 {
		return errors.New("must be between 1 and 31")
	}
	return nil
}
