package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// validation
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidPriceFormat  = errors.New("invalid price format")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidAddress      = errors.New("Invalid address")

	// price range, recovered locally via repair
	ErrPriceTooHigh = errors.New("price exceeds sanity ceiling")

	// authorization
	ErrNotOwner   = errors.New("caller is not the asset owner")
	ErrNotCreator = errors.New("caller is not the creator")
	ErrNotWinner  = errors.New("caller is not the winning bidder")

	// state
	ErrNotActive        = errors.New("not in an active state")
	ErrExpired          = errors.New("already expired")
	ErrNotExpired       = errors.New("not expired yet")
	ErrAlreadyCollected = errors.New("already collected")
	ErrDuplicateOffer   = errors.New("active offer for asset already exists")
	ErrNoBids           = errors.New("no bid has been placed")
	ErrHasBids          = errors.New("bid already placed")
	ErrNoChange         = errors.New("value unchanged")

	// precondition
	ErrPriceMismatch      = errors.New("expected price differs from live price")
	ErrBidTooLow          = errors.New("bid below buffered minimum")
	ErrBuyoutBelowMinimum = errors.New("buyout not above minimum bid")

	// ledger
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)

// ErrorKind groups sentinels for the presentation layer. PriceRange never
// escapes the core; it is repaired in place.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindPriceRange    ErrorKind = "price_range"
	KindAuthorization ErrorKind = "authorization"
	KindState         ErrorKind = "state"
	KindPrecondition  ErrorKind = "precondition"
	KindLedger        ErrorKind = "ledger"
	KindUnknown       ErrorKind = "unknown"
)

var errorKinds = map[error]ErrorKind{
	ErrInvalidNumberFormat: KindValidation,
	ErrInvalidPriceFormat:  KindValidation,
	ErrInvalidQuantity:     KindValidation,
	ErrInvalidDuration:     KindValidation,
	ErrInvalidCurrency:     KindValidation,
	ErrInvalidAddress:      KindValidation,
	ErrBadParamInput:       KindValidation,
	ErrPriceTooHigh:        KindPriceRange,
	ErrNotOwner:            KindAuthorization,
	ErrNotCreator:          KindAuthorization,
	ErrNotWinner:           KindAuthorization,
	ErrNotActive:           KindState,
	ErrExpired:             KindState,
	ErrNotExpired:          KindState,
	ErrAlreadyCollected:    KindState,
	ErrDuplicateOffer:      KindState,
	ErrNoBids:              KindState,
	ErrHasBids:             KindState,
	ErrNoChange:            KindState,
	ErrPriceMismatch:       KindPrecondition,
	ErrBidTooLow:           KindPrecondition,
	ErrBuyoutBelowMinimum:  KindPrecondition,
	ErrInsufficientFunds:   KindLedger,
	ErrLedgerUnavailable:   KindLedger,
}

// Kind classifies an error into its taxonomy bucket, unwrapping as needed.
func Kind(err error) ErrorKind {
	for sentinel, kind := range errorKinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
