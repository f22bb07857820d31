package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrDuplicateKey = fmt.Errorf("%w: duplicate object key", ErrParse)
	ErrEmpty        = fmt.Errorf("%w: empty document", ErrParse)
	ErrTrailing     = fmt.Errorf("%w: trailing data", ErrParse)
)
