package templates

import (
	"fmt"
	"strings"
)

// ValidateName checks that a template name is safe for use as a directory
// name and does not collide with the main or partials areas.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	if isReserved(name) {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidTemplateName, name)
	}
	return nil
}

func isReserved(name string) bool {
	return name == MainDir || name == PartialsDir
}
