package templates

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMainNotFound indicates the main area used for index pages is missing.
	ErrMainNotFound = errors.New("main template area not found")

	// ErrCommonStyleNotFound indicates the shared stylesheet is missing.
	ErrCommonStyleNotFound = errors.New("common stylesheet not found")

	// ErrInvalidTemplateName indicates the name contains path separators,
	// dots, or names a reserved area.
	ErrInvalidTemplateName = errors.New("invalid template name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrTemplateRead indicates an I/O error occurred while reading a template file.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrManifest indicates template.yaml could not be decoded.
	ErrManifest = errors.New("invalid template manifest")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrMainNotFound) ||
		errors.Is(err, ErrCommonStyleNotFound)
}
