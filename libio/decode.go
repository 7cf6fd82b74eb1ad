package libio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

func DecodeIntImage(r io.Reader) (img *IntImage, err error) {
	br := &BinaryReader{
		Src:   r,
		Order: binary.LittleEndian,
	}

	header := IntImageHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected img8 header: %w", br.Err)
	}

	if header.Check != MagicNumberImg8 {
		return nil, fmt.Errorf("img8 header is corrupt")
	}

	if header.Version != Img8Version1_000_000 {
		return nil, fmt.Errorf("img8 version %d unsupported", header.Version)
	}

	pix := make([]uint8, header.Width*header.Height*uint32(header.Channels))

	switch header.Compression {
	case IntImageCompressionNone:
		_, err = io.ReadFull(r, pix)
	case IntImageCompressionLz4:
		_, err = io.ReadFull(lz4.NewReader(r), pix)
	default:
		return nil, fmt.Errorf("unknown img8 compression %d", header.Compression)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read img8 pixels: %w", err)
	}

	return NewIntImage(pix, int(header.Channels), int(header.Width), int(header.Height)), nil
}
