package libio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// The img8 container caches decoded 8-bit pixel data so that an example can
// skip the PNG decode on the next start.

const MagicNumberImg8 = 0x38676d69

type IntImageVersion uint32

const (
	Img8Version1_000_000 = IntImageVersion(1_000_000)
)

type IntImageCompression uint32

const (
	IntImageCompressionNone = IntImageCompression(iota)
	IntImageCompressionLz4
)

type IntImageHeader struct {
	Check         uint32
	Version       IntImageVersion
	Width, Height uint32
	Channels      uint8
	Compression   IntImageCompression
	Unused        [14]uint8
}

func EncodeIntImage(w io.Writer, img *IntImage, compression IntImageCompression) (err error) {
	bw := &BinaryWriter{
		Dst:   w,
		Order: binary.LittleEndian,
	}

	header := IntImageHeader{
		Check:       MagicNumberImg8,
		Version:     Img8Version1_000_000,
		Width:       uint32(img.Width),
		Height:      uint32(img.Height),
		Channels:    uint8(img.Channels),
		Compression: compression,
	}

	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write img8 header: %w", bw.Err)
	}

	switch compression {
	case IntImageCompressionNone:
		if !bw.WriteBytes(img.Pix) {
			return fmt.Errorf("could not write img8 pixels: %w", bw.Err)
		}
	case IntImageCompressionLz4:
		lzw := lz4.NewWriter(w)
		lzw.Apply(lz4.CompressionLevelOption(lz4.Fast))
		if _, err = lzw.Write(img.Pix); err != nil {
			return fmt.Errorf("could not compress img8 pixels: %w", err)
		}
		if err = lzw.Close(); err != nil {
			return fmt.Errorf("could not flush img8 pixels: %w", err)
		}
	default:
		return fmt.Errorf("unknown img8 compression %d", compression)
	}

	return nil
}
