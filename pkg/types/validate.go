package types

import "time"

// DateLayout is the only accepted due date format.
const DateLayout = "2006-01-02"

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form.
// Month and day must be zero-padded; time.Parse rejects out-of-range days
// such as 2024-02-30.
func ValidateDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidateTitle returns ErrEmptyTitle for an empty title. Whitespace is
// content.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateDescription returns ErrEmptyDescription for an empty description.
func ValidateDescription(description string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ValidateDueDate returns ErrInvalidDate unless ValidateDate accepts s.
func ValidateDueDate(s string) error {
	if !ValidateDate(s) {
		return ErrInvalidDate
	}
	return nil
}

// ValidateFields checks interactively entered task fields in prompt order
// and returns the first failure.
func ValidateFields(title, description, dueDate string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	return ValidateDueDate(dueDate)
}
