package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "pc-build-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// storageError passes typed application errors through and wraps everything else
// as a StorageError for op
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsNotFound(err) || apperrors.IsValidation(err) || apperrors.IsAuthorization(err) ||
		apperrors.IsConflict(err) || apperrors.IsStorage(err) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}

// lookupError maps a missing row to notFound and wraps any other failure
func lookupError(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storageError(op, err)
}

// validationError converts validator failures into a ValidationError naming the first field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.ErrMissingUserIdentity
	}
	return nil
}
