package xmldoc

import "errors"

var (
	ErrNoRoot = errors.New("no root element")
)
