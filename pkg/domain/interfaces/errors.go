package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by any repository backend when a requested
// record does not exist.
var ErrNotFound = goerr.New("record not found")
