package db

import "errors"

var (
	ErrChainNotFound = errors.New("chain not found")
)
