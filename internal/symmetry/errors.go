package symmetry

import "errors"

// Common errors.
var (
	ErrInvalidRank               = errors.New("invalid rank: must be >= 0")
	ErrInvalidDimension          = errors.New("invalid dimension: must be >= 1")
	ErrConfigurationInconsistent = errors.New("inconsistent symmetry configuration")
	ErrTupleLength               = errors.New("index tuple length does not match rank")
	ErrIndexOutOfRange           = errors.New("index value out of range")
	ErrSlotOutOfRange            = errors.New("storage slot out of range")
	ErrSizeOverflow              = errors.New("storage size overflows int")
	ErrZeroSlot                  = errors.New("element is identically zero and cannot be written")
	ErrDataLength                = errors.New("data length does not match layout size")
)
