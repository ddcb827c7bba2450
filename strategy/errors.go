package strategy

import "errors"

// ErrUnknownStrategy indicates a strategy name that ByName does not recognize.
var ErrUnknownStrategy = errors.New("unknown fallback strategy")
