package examination

import "errors"

var ErrNotFound = errors.New("examination not found")
