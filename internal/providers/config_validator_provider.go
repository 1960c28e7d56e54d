package providers

import (
	"errors"
	"fmt"
	"funneld/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the struct tags and the cross-field rules the tags
// cannot express (SMTP settings are only mandatory when mail is enabled).
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	v.StopOnError = false
	if !v.Validate() {
		return errors.New(v.Errors.String())
	}

	if cv.conf.Mail.Enabled {
		if cv.conf.Mail.Host == "" {
			return errors.New("mail.host is required when mail is enabled")
		}
		if cv.conf.Mail.Port <= 0 {
			return fmt.Errorf("mail.port must be positive, got %d", cv.conf.Mail.Port)
		}
		if cv.conf.Mail.Username == "" || cv.conf.Mail.Password == "" {
			return errors.New("mail.username and mail.password are required when mail is enabled")
		}
		if cv.conf.Mail.FromEmail == "" {
			return errors.New("mail.fromEmail is required when mail is enabled")
		}
	}

	if cv.conf.Stats.CopiesFloor > cv.conf.Stats.RestockMax {
		return fmt.Errorf("stats.copiesFloor (%d) must not exceed stats.restockMax (%d)",
			cv.conf.Stats.CopiesFloor, cv.conf.Stats.RestockMax)
	}

	return nil
}
