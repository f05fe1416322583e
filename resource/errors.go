package resource

import "github.com/cockroachdb/errors"

// ErrNoMemoryType is returned when no memory type on the device satisfies both a resource's
// type filter and the requested property flags
var ErrNoMemoryType = errors.New("no suitable memory type")

// PowerOfTwoError is returned from CheckPow2 when the number being tested is not a power of two
var PowerOfTwoError = errors.New("number must be a power of two")
