package codec

import "errors"

var (
	ErrParserExists = errors.New("parser exists")
	ErrNoParser     = errors.New("no parser")
	ErrNotList      = errors.New("not a list")
	ErrEncode       = errors.New("encode error")
	ErrUnknownEnum  = errors.New("unknown enum")
)
