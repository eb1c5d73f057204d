// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame magic number that prefixes every zstd stream.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var encoder *zstd.Encoder = func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithSingleSegment(true),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}
	return encoder
}()

var decoder *zstd.Decoder = func() *zstd.Decoder {
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}
	return decoder
}()

// Encode writes l as JSON, zstd-compressed when compressed is true.
// The list is validated first.
func Encode(w io.Writer, l *List, compressed bool) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	if compressed {
		raw = encoder.EncodeAll(raw, nil)
	}
	if _, err = w.Write(raw); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}

	return nil
}

// Decode reads a list written by Encode. Compressed input is recognised by
// the zstd magic number, so callers need not know how it was written.
func Decode(r io.Reader) (*List, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("render: decode: %w", err)
	}
	if bytes.HasPrefix(raw, zstdMagic) {
		if raw, err = decoder.DecodeAll(raw, nil); err != nil {
			return nil, fmt.Errorf("render: decode: %w", err)
		}
	}
	var l List
	if err = json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("render: decode: %w", err)
	}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("render: decode: %w", err)
	}

	return &l, nil
}
