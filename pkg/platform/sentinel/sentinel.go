package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and the layers above translate them into domain errors.
//
//   - ErrCorrupt: stored data could not be decoded into valid records
//   - ErrUnavailable: the backend could not be reached
var (
	ErrCorrupt     = errors.New("corrupt snapshot")
	ErrUnavailable = errors.New("unavailable")
)
