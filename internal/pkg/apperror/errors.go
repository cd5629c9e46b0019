package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies domain errors so callers can branch without matching messages
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindStateConflict
	KindInsufficientBalance
	KindProcessingFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindStateConflict:
		return "StateConflict"
	case KindInsufficientBalance:
		return "InsufficientBalance"
	case KindProcessingFailure:
		return "ProcessingFailure"
	default:
		return "Internal"
	}
}

// Error is a classified domain error
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a classified error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Not found
var (
	ErrReservationNotFound = New(KindNotFound, "reservation not found")
	ErrPaymentNotFound     = New(KindNotFound, "payment not found")
	ErrUserNotFound        = New(KindNotFound, "user not found")
	ErrWalletNotFound      = New(KindNotFound, "wallet not found")
	ErrSpotNotFound        = New(KindNotFound, "parking spot not found")
)

// Invalid input
var (
	ErrInvalidAmount  = New(KindInvalidInput, "amount must be greater than zero")
	ErrInvalidPenalty = New(KindInvalidInput, "invalid penalty")
	ErrInvalidTimeout = New(KindInvalidInput, "timeout must be between 1 and 60 minutes")
	ErrInvalidPayment = New(KindInvalidInput, "invalid payment")
	ErrInvalidSpot    = New(KindInvalidInput, "invalid parking spot")
	ErrInvalidUser    = New(KindInvalidInput, "invalid user")
)

// State conflicts
var (
	ErrSpotNotAvailable     = New(KindStateConflict, "parking spot is not available")
	ErrSpotTypeMismatch     = New(KindStateConflict, "parking spot type is not allowed for this user")
	ErrInvalidTransition    = New(KindStateConflict, "reservation is not in the required state")
	ErrPaymentAlreadyExists = New(KindStateConflict, "payment already exists for reservation")
	ErrEmailTaken           = New(KindStateConflict, "email is already registered")
	ErrSpotNumberTaken      = New(KindStateConflict, "spot number is already registered")
)

// Business outcomes
var (
	ErrInsufficientBalance = New(KindInsufficientBalance, "insufficient balance")
)

// Processing failures
var (
	ErrPaymentProcessing  = New(KindProcessingFailure, "payment processing failed")
	ErrNotificationFailed = New(KindProcessingFailure, "notification delivery failed")
)

// Wrap attaches a cause to a classified sentinel; both stay matchable with errors.Is
func Wrap(sentinel *Error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// KindOf returns the kind of the outermost classified error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns a message safe to show callers
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal server error"
	}
	if e.Kind == KindProcessingFailure {
		return e.Message
	}
	return err.Error()
}
