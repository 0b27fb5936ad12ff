package usecase

import (
	"errors"
	"fmt"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("confirmation use case persistence error")

// ErrNotOnRoster rejects confirmation writes from users outside the session roster.
var ErrNotOnRoster = errors.New("confirmation: join the session before confirming attendance")
