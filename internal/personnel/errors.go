package personnel

import "errors"

var (
	ErrNotFound          = errors.New("employee not found")
	ErrRemoved           = errors.New("employee has been removed")
	ErrDuplicatePresence = errors.New("presence already recorded for this date")
	ErrPresenceNotFound  = errors.New("no presence recorded for this date")
	ErrInvalidStatus     = errors.New("invalid presence status")
)
