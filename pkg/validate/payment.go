package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const maxDetailsLength = 500

var (
	ErrEmptyDetails    = errors.New("payment details are empty")
	ErrDetailsTooLong  = errors.New("payment details are too long")
	ErrNoCardNumber    = errors.New("no card number in payment details")
	ErrInvalidCardLuhn = errors.New("card number fails the Luhn check")
)

var (
	cardMethods   = map[string]struct{}{"card": {}, "bank_card": {}}
	cardNumberExp = regexp.MustCompile(`\d(?:[ -]?\d){11,18}`)
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

func IsCardMethod(method string) bool {
	_, ok := cardMethods[strings.ToLower(method)]
	return ok
}

// PaymentDetails checks the free-form details a loader sends for method.
// Card methods must carry a 12 to 19 digit card number that passes the Luhn
// check; spaces and dashes between digits are ignored.
func PaymentDetails(method, details string) error {
	details = strings.TrimSpace(details)
	switch {
	case details == "":
		return ErrEmptyDetails
	case len(details) > maxDetailsLength:
		return ErrDetailsTooLong
	case !IsCardMethod(method):
		return nil
	}

	number := cardNumberExp.FindString(details)
	if number == "" {
		return ErrNoCardNumber
	}
	number = strings.NewReplacer(" ", "", "-", "").Replace(number)
	if !IsLuhn(number) {
		return ErrInvalidCardLuhn
	}
	return nil
}
