package eta

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
