package reservation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashtagbbq/tableside/internal/domain"
)

// Field names, matching the booking form's input names.
const (
	FieldName   = "customerName"
	FieldPhone  = "customerPhone"
	FieldDate   = "reservationDate"
	FieldTime   = "reservationTime"
	FieldGuests = "numberOfGuests"
)

// GuestsOverflow is the selection for parties larger than the guest picker
// covers. It is valid as-is and never parsed as a number.
const GuestsOverflow = "10+"

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks every field of the booking request independently and
// returns one message per failing field. An empty map means the request is
// valid. Validation failures are user-correctable and never become errors.
func Validate(req domain.ReservationRequest, now time.Time) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(req.CustomerName) == "" {
		fieldErrors[FieldName] = "Name is required"
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		fieldErrors[FieldPhone] = "Phone number is required"
	} else if !phonePattern.MatchString(req.CustomerPhone) {
		fieldErrors[FieldPhone] = "Please enter a valid 10-digit phone number"
	}

	if req.Date == "" {
		fieldErrors[FieldDate] = "Date is required"
	} else if !onOrAfterToday(req.Date, now) {
		fieldErrors[FieldDate] = "Please select a future date"
	}

	if req.Time == "" {
		fieldErrors[FieldTime] = "Time is required"
	}

	if !validGuests(req.Guests) {
		fieldErrors[FieldGuests] = "Please select number of guests"
	}

	return fieldErrors
}

// onOrAfterToday compares at day granularity in the clock's location.
func onOrAfterToday(date string, now time.Time) bool {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(today)
}

func validGuests(value string) bool {
	if value == GuestsOverflow {
		return true
	}

	n, err := strconv.Atoi(value)
	return err == nil && n >= 1
}
