package db

import "errors"

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

var (
	ErrBrandNotFound  = errors.New("brand not found")
	ErrBrandNameTaken = errors.New("brand name is already taken in this chain")
	ErrChainMissing   = errors.New("referenced chain does not exist")
)
