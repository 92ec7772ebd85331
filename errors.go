package vec

import "errors"

// ErrOutOfRange is returned by At when the index is not inside [0, Len()).
// Check for it with errors.Is; the returned error carries the offending
// index and the current length.
var ErrOutOfRange = errors.New("vec: index out of range")
