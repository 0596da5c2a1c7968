package knowledge

import "errors"

var (
	ErrLoadFailed = errors.New("knowledge base load failed")
	ErrNotLoaded  = errors.New("knowledge base not loaded")
)
