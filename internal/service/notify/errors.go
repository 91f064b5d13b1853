package notify

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
