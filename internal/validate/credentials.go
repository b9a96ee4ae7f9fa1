package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/skybook/skybook/internal/models"
)

// Mode selects which credential form is being validated.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Deliberately loose: some non-whitespace, an @, more non-whitespace, a dot,
// more non-whitespace. Full RFC address validation is out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Credentials validates a login or registration submission.
func Credentials(mode Mode, c models.Credentials) Errors {
	errs := Errors{}

	if mode == ModeRegister {
		if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < 2 {
			errs["name"] = "Name must be at least 2 characters long"
		}
	}

	if c.Email == "" || !emailPattern.MatchString(c.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if len(c.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters long"
	}

	if mode == ModeRegister && c.Password != c.Confirm {
		errs["confirm"] = "Passwords do not match"
	}

	return errs
}
