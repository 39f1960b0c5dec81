package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// requireCodeAndName rejects blank codes and names before any transaction is opened.
// Length and format rules stay with the registry entities.
func requireCodeAndName(code, name string) error {
	var errCode, errName error
	if strings.TrimSpace(code) == "" {
		errCode = errs.NewValueIsRequiredError("code")
	}
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("name")
	}
	return errors.Join(errCode, errName)
}

func requireID(id kernel.UUID) error {
	return id.Validate()
}
