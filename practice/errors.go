package practice

import "errors"

var (
	ErrClosed           = errors.New("practice: session is closed")
	ErrNotReviewing     = errors.New("practice: no card is being reviewed")
	ErrNotFinished      = errors.New("practice: pass is not finished")
	ErrNothingLaidAside = errors.New("practice: no laid-aside cards")
)
