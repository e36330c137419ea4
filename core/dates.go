package core

import (
	"errors"
	"time"
)

// Calendar-date helpers and range validators for the date inputs the
// console collects: birthdates, incident dates, expiry dates and
// schedule dates. All arithmetic is done on local calendar dates --
// never on UTC instants -- so a date typed by the user can round-trip
// without drifting a day in either direction.

const DateLayout = "2006-01-02"

var nowFunc = time.Now // mockable

var (
	ErrInvalidDate = errors.New("enter a valid date")

	errBirthdateRequired = errors.New("date of birth is required")
	errBirthdateTooOld   = errors.New("date of birth cannot be more than 150 years ago")
	errBirthdateFuture   = errors.New("date of birth cannot be today or in the future")

	errIncidentDateRequired = errors.New("incident date is required")
	errIncidentDateTooOld   = errors.New("incident date cannot be more than 10 years ago")
	errIncidentDateFuture   = errors.New("incident date cannot be in the future")

	errExpiryDateRequired = errors.New("expiry date is required")
	errExpiryDateTooOld   = errors.New("expiry date cannot be more than 6 months ago")
	errExpiryDateTooFar   = errors.New("expiry date cannot be more than 6 months from now")

	errScheduleDateRequired = errors.New("scheduled date is required")
	errScheduleDateTooFar   = errors.New("scheduled date cannot be more than 5 years in the future")
)

// today returns the current local calendar date at midnight.
func today() time.Time {
	now := nowFunc()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Today returns the current local calendar date in YYYY-MM-DD form.
func Today() string {
	return FormatDateForInput(today())
}

// FormatDateForInput renders t's local calendar date in YYYY-MM-DD form.
func FormatDateForInput(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateInput parses a YYYY-MM-DD string as a local calendar date.
func ParseDateInput(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Birthdate window: [today - 150 years, today). A birthdate of today is
// rejected; the lower bound is inclusive.

func MinBirthdate() string {
	return FormatDateForInput(today().AddDate(-150, 0, 0))
}

func MaxBirthdate() string {
	return FormatDateForInput(today().AddDate(0, 0, -1))
}

func ValidateBirthdate(s string) error {
	if s == "" {
		return errBirthdateRequired
	}
	d, err := ParseDateInput(s)
	if err != nil {
		return err
	}
	now := today()
	if d.Before(now.AddDate(-150, 0, 0)) {
		return errBirthdateTooOld
	}
	if !d.Before(now) {
		return errBirthdateFuture
	}
	return nil
}

// Incident window: [today - 10 years, today], both bounds inclusive.

func MinIncidentDate() string {
	return FormatDateForInput(today().AddDate(-10, 0, 0))
}

func MaxIncidentDate() string {
	return Today()
}

func ValidateIncidentDate(s string) error {
	if s == "" {
		return errIncidentDateRequired
	}
	d, err := ParseDateInput(s)
	if err != nil {
		return err
	}
	now := today()
	if d.Before(now.AddDate(-10, 0, 0)) {
		return errIncidentDateTooOld
	}
	if d.After(now) {
		return errIncidentDateFuture
	}
	return nil
}

// Expiry window: today +/- 6 months, both bounds inclusive. Recently
// expired stock is still recorded so the nurse can flag it for disposal.

func MinExpiryDate() string {
	return FormatDateForInput(today().AddDate(0, -6, 0))
}

func MaxExpiryDate() string {
	return FormatDateForInput(today().AddDate(0, 6, 0))
}

func ValidateExpiryDate(s string) error {
	if s == "" {
		return errExpiryDateRequired
	}
	d, err := ParseDateInput(s)
	if err != nil {
		return err
	}
	now := today()
	if d.Before(now.AddDate(0, -6, 0)) {
		return errExpiryDateTooOld
	}
	if d.After(now.AddDate(0, 6, 0)) {
		return errExpiryDateTooFar
	}
	return nil
}

// Schedule dates only have an upper bound: today + 5 years, inclusive.
// Past dates are allowed (back-filled administrations).

func MaxScheduleDate() string {
	return FormatDateForInput(today().AddDate(5, 0, 0))
}

func ValidateScheduleDate(s string) error {
	if s == "" {
		return errScheduleDateRequired
	}
	d, err := ParseDateInput(s)
	if err != nil {
		return err
	}
	if d.After(today().AddDate(5, 0, 0)) {
		return errScheduleDateTooFar
	}
	return nil
}

// Age returns the full years elapsed since the given birthdate,
// decremented by one when this year's birthday has not been reached yet.
func Age(birthdate string) (int, error) {
	d, err := ParseDateInput(birthdate)
	if err != nil {
		return 0, err
	}
	now := today()
	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}
	return age, nil
}
