package config

import "errors"

var (
	ErrReadOnly      = errors.New("configuration is read only")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrIndexGap      = errors.New("index gap")
	ErrInvalidConfig = errors.New("invalid configuration")
)
