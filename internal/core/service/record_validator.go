package service

import (
	"strings"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

// RecordValidator checks a record against the catalog. Checks run in a fixed
// order and stop at the first failure.
type RecordValidator struct {
	catalog port.Catalog
}

func NewRecordValidator(catalog port.Catalog) *RecordValidator {
	return &RecordValidator{
		catalog: catalog,
	}
}

func (v *RecordValidator) Validate(record domain.EmailRecord) error {
	allowedDomains, ok := v.catalog.AllowedDomains(record.ClientID)
	if !ok {
		return domain.NewUnknownClientError(record.ClientID)
	}

	senderDomain := ExtractDomain(record.Sender)
	if _, ok := allowedDomains[senderDomain]; !ok {
		return domain.NewDomainNotAllowedError(senderDomain, record.ClientID)
	}

	prefix, ok := v.catalog.ExpectedPrefix(senderDomain)
	if !ok {
		return domain.NewMissingPrefixConfigError(senderDomain)
	}

	if !strings.HasPrefix(record.SMTPCode, prefix) {
		return domain.NewInvalidSmtpCodeError(senderDomain, prefix)
	}

	return nil
}

// ExtractDomain returns the lower-cased text after the last '@' of address,
// or "" when there is none.
func ExtractDomain(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(address[at+1:])
}
