package errors

var (
	ErrInvalidAddress = &DomainError{
		Code:    "INVALID_ADDRESS",
		Message: "not a valid solana address",
	}
	ErrUpstreamUnavailable = &DomainError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "chain rpc endpoint unreachable",
	}
	ErrUnknownSymbol = &DomainError{
		Code:    "UNKNOWN_SYMBOL",
		Message: "no price feed registered for symbol",
	}
	ErrTokenNotFound = &DomainError{
		Code:    "TOKEN_NOT_FOUND",
		Message: "token metadata not found",
	}
	ErrScanNotFound = &DomainError{
		Code:    "SCAN_NOT_FOUND",
		Message: "scan record not found",
	}
)
