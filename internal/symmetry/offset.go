package symmetry

import "fmt"

// Sign is the orientation of a stored component relative to the addressed element.
type Sign int8

// Signs.
const (
	Positive Sign = 1
	Negative Sign = -1
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Offset is the result of ranking an index tuple: either Zero (the element is
// identically zero) or a slot in compact storage together with a sign.
type Offset struct {
	slot int
	sign Sign // 0 marks the Zero variant
}

// Zero is the offset of an element that is algebraically zero.
var Zero = Offset{}

// Slot returns the offset of storage slot index with the given sign.
func Slot(index int, sign Sign) Offset {
	if sign != Negative {
		sign = Positive
	}
	return Offset{slot: index, sign: sign}
}

// IsZero reports whether the element is algebraically zero.
func (o Offset) IsZero() bool {
	return o.sign == 0
}

// Index returns the storage slot. It is meaningless for Zero.
func (o Offset) Index() int {
	return o.slot
}

// Sign returns the orientation of the slot. It is meaningless for Zero.
func (o Offset) Sign() Sign {
	return o.sign
}

// Encode returns the signed integer form: 0 for Zero, otherwise
// ±(slot+1) with the sign of the orientation.
func (o Offset) Encode() int {
	switch o.sign {
	case Positive:
		return o.slot + 1
	case Negative:
		return -(o.slot + 1)
	default:
		return 0
	}
}

// DecodeOffset is the inverse of Offset.Encode.
func DecodeOffset(v int) Offset {
	switch {
	case v > 0:
		return Offset{slot: v - 1, sign: Positive}
	case v < 0:
		return Offset{slot: -v - 1, sign: Negative}
	default:
		return Zero
	}
}

// String returns "0" for Zero and "+n"/"-n" for a slot.
func (o Offset) String() string {
	if o.IsZero() {
		return "0"
	}
	return fmt.Sprintf("%s%d", o.sign, o.slot)
}
