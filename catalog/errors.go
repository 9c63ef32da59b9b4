package catalog

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrContentRootNotFound = errors.New("catalog: content root not found")
	ErrContentFileMissing  = errors.New("catalog: content file missing")
	ErrServiceClosed       = errors.New("catalog: service closed")
)

const (
	contentFileMissingCode = "CONTENT_FILE_MISSING"
	contentRootMissingCode = "CONTENT_ROOT_MISSING"
)

// WrapReadError tags a content-file read failure so callers can fail
// loudly at build/test time. Content absence is a packaging defect,
// never a recoverable runtime condition.
func WrapReadError(err error, path string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "catalog: read content file "+path).
		WithTextCode(contentFileMissingCode)
}

// WrapRootError tags a content-root resolution failure.
func WrapRootError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "catalog: resolve content root").
		WithTextCode(contentRootMissingCode)
}
