package impl

import (
	"fmt"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

// databaseError keeps errors the repositories already classified and wraps anything else
// as a database failure of operation.
func databaseError(err error, operation string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return errors.WithMessage(err, operation)
	}

	return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, operation))
}

func validationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

func mapUserError(err error, operation string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return databaseError(err, operation)
}

func mapOrderError(err error, orderID uuid.UUID, operation string) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound.WithDetails("order " + orderID.String())
	}

	return databaseError(err, operation)
}

func mapProductError(err error, productID uuid.UUID, operation string) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound.WithDetails("product " + productID.String())
	case errors.Is(err, repository.ErrProductNameTaken):
		return domainerrors.ErrProductNameTaken
	}

	return databaseError(err, operation)
}

// mapReservationError translates a failed ReserveStock call into the error shown to the buyer.
func mapReservationError(err error, productID uuid.UUID) error {
	if shortage, ok := errors.AsType[*repository.InsufficientStockError](err); ok {
		return domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf(
			"insufficient stock for %s: requested %d, available %d",
			shortage.ProductName, shortage.Requested, shortage.Available,
		))
	}
	if errors.Is(err, repository.ErrProductDeactivated) {
		return domainerrors.ErrProductUnavailable.WithDetails("product " + productID.String() + " is deactivated")
	}

	return mapProductError(err, productID, "reserve stock")
}
