// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
)

const (
	// MaxVarIntPayload is the maximum payload size for a variable length integer.
	MaxVarIntPayload = 9

	// MaxMessagePayload is the maximum bytes a message can be regardless of
	// other individual limits imposed by messages themselves.
	MaxMessagePayload = 1024 * 1024 * 32 // 32MB

	// errNonCanonicalVarInt is the common format string used for
	// non-canonically encoded variable length integer errors.
	errNonCanonicalVarInt = "non-canonical varint %x - discriminant %x must " +
		"encode a value greater than %x"
)

var littleEndian = binary.LittleEndian

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case *int32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(scratch[:4]))
		return nil

	case *uint32:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(scratch[:4])
		return nil

	case *int64:
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(scratch[:]))
		return nil

	case *uint64:
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return err
		}
		*e = littleEndian.Uint64(scratch[:])
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *BitcoinNet:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return err
		}
		*e = BitcoinNet(littleEndian.Uint32(scratch[:4]))
		return nil
	}

	// Fall back to the slower binary.Read if a fast path was not available
	// above.
	return binary.Read(r, littleEndian, element)
}

// ReadElements reads multiple items from r.  It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	var scratch [8]byte

	switch e := element.(type) {
	case int32:
		littleEndian.PutUint32(scratch[:4], uint32(e))
		_, err := w.Write(scratch[:4])
		return err

	case uint32:
		littleEndian.PutUint32(scratch[:4], e)
		_, err := w.Write(scratch[:4])
		return err

	case int64:
		littleEndian.PutUint64(scratch[:], uint64(e))
		_, err := w.Write(scratch[:])
		return err

	case uint64:
		littleEndian.PutUint64(scratch[:], e)
		_, err := w.Write(scratch[:])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case BitcoinNet:
		littleEndian.PutUint32(scratch[:4], uint32(e))
		_, err := w.Write(scratch[:4])
		return err
	}

	// Fall back to the slower binary.Write if a fast path was not available
	// above.
	return binary.Write(w, littleEndian, element)
}

// WriteElements writes multiple items to w.  It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a variable length integer from r and returns it as a uint64.
func ReadVarInt(r io.Reader) (uint64, error) {
	var discriminant [1]byte
	if _, err := io.ReadFull(r, discriminant[:]); err != nil {
		return 0, err
	}

	var (
		rv      uint64
		min     uint64
		scratch [8]byte
	)
	switch discriminant[0] {
	case 0xff:
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return 0, err
		}
		rv, min = littleEndian.Uint64(scratch[:]), 0x100000000

	case 0xfe:
		if _, err := io.ReadFull(r, scratch[:4]); err != nil {
			return 0, err
		}
		rv, min = uint64(littleEndian.Uint32(scratch[:4])), 0x10000

	case 0xfd:
		if _, err := io.ReadFull(r, scratch[:2]); err != nil {
			return 0, err
		}
		rv, min = uint64(littleEndian.Uint16(scratch[:2])), 0xfd

	default:
		return uint64(discriminant[0]), nil
	}

	// The encoding is not canonical if the value could have been
	// encoded using fewer bytes.
	if rv < min {
		return 0, messageError("ReadVarInt", fmt.Sprintf(
			errNonCanonicalVarInt, rv, discriminant[0], min))
	}

	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, val uint64) error {
	var buf [MaxVarIntPayload]byte

	switch {
	case val < 0xfd:
		buf[0] = uint8(val)
		_, err := w.Write(buf[:1])
		return err

	case val <= math.MaxUint16:
		buf[0] = 0xfd
		littleEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err

	case val <= math.MaxUint32:
		buf[0] = 0xfe
		littleEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err
	}

	buf[0] = 0xff
	littleEndian.PutUint64(buf[1:], val)
	_, err := w.Write(buf[:])
	return err
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= math.MaxUint16:
		return 3
	case val <= math.MaxUint32:
		return 5
	}
	return 9
}

// ReadVarBytes reads a variable length byte array.  A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves.  An error is returned if the length is greater than the
// passed maxAllowed parameter which helps protect against memory exhaustion
// attacks and forced panics through malformed messages.  The fieldName
// parameter is only used for the error message so it provides more context in
// the error.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", str)
	}

	b := make([]byte, count)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	err := WriteVarInt(w, uint64(len(bytes)))
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return err
}
