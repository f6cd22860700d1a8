package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/symtensor/internal/symmetry"
)

// ReaderOptions configures Read.
type ReaderOptions struct {
	SkipChecksumValidation bool // Skip checksum validation (faster but less safe)
}

type fixedHeader struct {
	flags      uint32
	headerSize uint64
	dataSize   uint64
	checksum   [32]byte
}

// Read decodes a .sym stream into compact storage with a freshly built layout.
func Read[T symmetry.Scalar](r io.Reader) (*symmetry.Storage[T], Header, error) {
	return ReadWithOptions[T](r, ReaderOptions{})
}

// ReadWithOptions is Read with custom options.
func ReadWithOptions[T symmetry.Scalar](r io.Reader, opts ReaderOptions) (*symmetry.Storage[T], Header, error) {
	fixed, header, err := readHeaders(r)
	if err != nil {
		return nil, Header{}, err
	}

	dtype, elemSize := dtypeOf[T]()
	if header.DType != dtype {
		return nil, header, fmt.Errorf("%w: file has %s, reading as %s", ErrDTypeMismatch, header.DType, dtype)
	}
	layout, err := header.Layout()
	if err != nil {
		return nil, header, err
	}
	if err := checkDataSize(fixed.dataSize, layout.Size(), elemSize, dtype); err != nil {
		return nil, header, err
	}

	// Read through a limit so a truncated stream fails before a full-size allocation.
	raw, err := io.ReadAll(io.LimitReader(r, int64(fixed.dataSize)))
	if err != nil {
		return nil, header, fmt.Errorf("failed to read data: %w", err)
	}
	if uint64(len(raw)) != fixed.dataSize {
		return nil, header, fmt.Errorf("failed to read data: %w", io.ErrUnexpectedEOF)
	}
	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(raw), fixed.checksum); err != nil {
			return nil, header, err
		}
	}

	data, err := decodeData[T](raw, layout.Size())
	if err != nil {
		return nil, header, err
	}
	s, err := symmetry.StorageFrom(layout, data)
	if err != nil {
		return nil, header, err
	}
	return s, header, nil
}

// checkDataSize verifies that dataSize holds exactly n elements of elemSize bytes.
func checkDataSize(dataSize uint64, n, elemSize int, dtype string) error {
	if elemSize <= 0 || n < 0 || uint64(n) > math.MaxInt64/uint64(elemSize) {
		return &ValidationError{
			Field:   "data_size",
			Details: fmt.Sprintf("%d elements of %s exceed the addressable size", n, dtype),
		}
	}
	if dataSize%uint64(elemSize) != 0 || dataSize/uint64(elemSize) != uint64(n) {
		return &ValidationError{
			Field:   "data_size",
			Details: fmt.Sprintf("%d bytes for %d elements of %s", dataSize, n, dtype),
		}
	}
	return nil
}

// ReadHeader decodes only the headers of a .sym stream.
func ReadHeader(r io.Reader) (Header, error) {
	_, h, err := readHeaders(r)
	return h, err
}

// Load reads a .sym file from path.
func Load[T symmetry.Scalar](path string) (*symmetry.Storage[T], Header, error) {
	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Read[T](file)
}

// readHeaders consumes the fixed header, the JSON header and its padding.
func readHeaders(r io.Reader) (fixedHeader, Header, error) {
	var fh fixedHeader
	buf := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fh, Header{}, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(buf[0:4]) != MagicBytes {
		return fh, Header{}, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint32(buf[4:8]); v != FormatVersion {
		return fh, Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, v, FormatVersion)
	}
	fh.flags = binary.LittleEndian.Uint32(buf[8:12])
	fh.headerSize = binary.LittleEndian.Uint64(buf[16:24])
	fh.dataSize = binary.LittleEndian.Uint64(buf[24:32])
	copy(fh.checksum[:], buf[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if fh.headerSize > MaxHeaderSize {
		return fh, Header{}, ErrHeaderTooLarge
	}
	headerBytes := make([]byte, fh.headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return fh, Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	var h Header
	if err := json.Unmarshal(headerBytes, &h); err != nil {
		return fh, Header{}, fmt.Errorf("failed to parse header JSON: %w", err)
	}
	if pad := padding(int64(fh.headerSize)); pad > 0 {
		if _, err := io.CopyN(io.Discard, r, pad); err != nil {
			return fh, h, fmt.Errorf("failed to skip padding: %w", err)
		}
	}
	return fh, h, nil
}
