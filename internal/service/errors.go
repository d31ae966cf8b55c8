package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrHeadBankNotFound   = errors.New("headquarter bank does not exist")
	ErrChildBranchesFound = errors.New("bank has child branches")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAuthDisabled            = errors.New("authorization is disabled")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
