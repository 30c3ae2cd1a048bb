package masker

import "errors"

var ErrConfigNotPointer = errors.New("config must be a pointer to struct")
