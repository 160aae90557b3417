package record

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type notFoundError struct {
	ID uuid.UUID
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("analysis record with ID '%s' not found", e.ID.String())
}

func NewNotFoundError(id uuid.UUID) error {
	return &notFoundError{ID: id}
}

func IsNotFound(err error) bool {
	var nf *notFoundError
	return errors.As(err, &nf)
}
