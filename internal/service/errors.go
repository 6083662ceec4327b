package service

import (
	"errors"
	"fmt"

	"github.com/Toylycker/Travel-Agency/internal/repository"
)

// NotFoundError reports a filter reference or record that does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

var notFoundResources = map[error]string{
	repository.ErrCategoryNotFound: "category",
	repository.ErrLocationNotFound: "location",
	repository.ErrSubjectNotFound:  "subject",
	repository.ErrPlaceNotFound:    "place",
	repository.ErrPostNotFound:     "post",
	repository.ErrTourNotFound:     "tour",
}

// notFound converts repository sentinels into *NotFoundError and passes any
// other error through unchanged.
func notFound(err error, key any) error {
	for sentinel, resource := range notFoundResources {
		if errors.Is(err, sentinel) {
			return &NotFoundError{Resource: resource, Key: fmt.Sprint(key)}
		}
	}
	return err
}
