package patch

import (
	"errors"
	"fmt"
)

var (
	ErrPatch      = errors.New("patch error")
	ErrTestFailed = fmt.Errorf("%w: test failed", ErrPatch)
	ErrBadOp      = fmt.Errorf("%w: bad operation", ErrPatch)
)
