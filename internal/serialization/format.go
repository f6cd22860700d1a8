package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/born-ml/symtensor/internal/symmetry"
)

// Format constants.
const (
	MagicBytes      = "SYMT"
	FormatVersion   = 1
	HeaderAlignment = 64
	FixedHeaderSize = 64
	ChecksumOffset  = 0x20
	ChecksumSize    = 32
	MaxHeaderSize   = 1 << 20
)

// Flags.
const (
	FlagHasMetadata uint32 = 1 << 0
)

// Data type string constants.
const (
	DTypeFloat32    = "float32"
	DTypeFloat64    = "float64"
	DTypeInt8       = "int8"
	DTypeInt16      = "int16"
	DTypeInt32      = "int32"
	DTypeInt64      = "int64"
	DTypeComplex64  = "complex64"
	DTypeComplex128 = "complex128"
)

// Header is the JSON header of a .sym file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	Rank          int               `json:"rank"`
	Dim           int               `json:"dim"`
	DType         string            `json:"dtype"`
	Groups        []GroupMeta       `json:"groups"`
	Size          int               `json:"size"` // Number of stored elements.
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// GroupMeta describes one group of the configuration.
type GroupMeta struct {
	Positions []int  `json:"positions"`
	Kind      string `json:"kind"`
}

// Configuration rebuilds the configuration recorded in the header.
func (h Header) Configuration() (symmetry.Configuration, error) {
	groups := make([]symmetry.Group, 0, len(h.Groups))
	for _, g := range h.Groups {
		kind, ok := symmetry.ParseKind(g.Kind)
		if !ok {
			return symmetry.Configuration{}, &ValidationError{Field: "groups", Details: fmt.Sprintf("unknown kind %q", g.Kind)}
		}
		groups = append(groups, symmetry.Group{Positions: g.Positions, Kind: kind})
	}
	c, err := symmetry.NewConfiguration(h.Rank, groups...)
	if err != nil {
		return symmetry.Configuration{}, &ValidationError{Field: "groups", Details: err.Error()}
	}
	return c, nil
}

// Layout rebuilds the layout and checks the recorded size against it.
func (h Header) Layout() (*symmetry.Layout, error) {
	c, err := h.Configuration()
	if err != nil {
		return nil, err
	}
	l, err := symmetry.NewLayout(c, h.Dim)
	if err != nil {
		return nil, &ValidationError{Field: "dim", Details: err.Error()}
	}
	if l.Size() != h.Size {
		return nil, &ValidationError{Field: "size", Details: fmt.Sprintf("header says %d, layout has %d", h.Size, l.Size())}
	}
	return l, nil
}

func headerFor(l *symmetry.Layout, dtype string, metadata map[string]string) Header {
	c := l.Config()
	h := Header{
		FormatVersion: FormatVersion,
		Rank:          c.Rank(),
		Dim:           l.Dim(),
		DType:         dtype,
		Groups:        make([]GroupMeta, 0, c.NumGroups()),
		Size:          l.Size(),
		Metadata:      metadata,
	}
	for _, g := range c.Groups() {
		h.Groups = append(h.Groups, GroupMeta{Positions: g.Positions, Kind: g.Kind.String()})
	}
	return h
}

// dtypeOf returns the on-disk type name and element size for T.
func dtypeOf[T symmetry.Scalar]() (string, int) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return DTypeFloat32, 4
	case reflect.Float64:
		return DTypeFloat64, 8
	case reflect.Int8:
		return DTypeInt8, 1
	case reflect.Int16:
		return DTypeInt16, 2
	case reflect.Int32:
		return DTypeInt32, 4
	case reflect.Int64, reflect.Int:
		return DTypeInt64, 8
	case reflect.Complex64:
		return DTypeComplex64, 8
	case reflect.Complex128:
		return DTypeComplex128, 16
	default:
		return "unknown", 0
	}
}

// encodeData converts the elements to their little-endian representation.
func encodeData[T symmetry.Scalar](data []T) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if reflect.TypeFor[T]().Kind() == reflect.Int {
		wide := make([]int64, len(data))
		for i, v := range data {
			wide[i] = reflect.ValueOf(v).Int()
		}
		err = binary.Write(&buf, binary.LittleEndian, wide)
	} else {
		err = binary.Write(&buf, binary.LittleEndian, data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeData is the inverse of encodeData.
func decodeData[T symmetry.Scalar](raw []byte, n int) ([]T, error) {
	out := make([]T, n)
	r := bytes.NewReader(raw)
	if reflect.TypeFor[T]().Kind() != reflect.Int {
		if err := binary.Read(r, binary.LittleEndian, out); err != nil {
			return nil, fmt.Errorf("failed to decode data: %w", err)
		}
		return out, nil
	}

	wide := make([]int64, n)
	if err := binary.Read(r, binary.LittleEndian, wide); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	for i, v := range wide {
		e := reflect.ValueOf(&out[i]).Elem()
		if e.OverflowInt(v) {
			return nil, fmt.Errorf("failed to decode data: element %d overflows int", i)
		}
		e.SetInt(v)
	}
	return out, nil
}

func padding(n int64) int64 {
	return (HeaderAlignment - n%HeaderAlignment) % HeaderAlignment
}
