package libio_test

import (
	"bytes"
	"math/rand"
	"testing"

	"opengl-playground/libio"
)

func randomPixels(count int) []uint8 {
	rng := rand.New(rand.NewSource(0))
	ret := make([]uint8, count)
	rng.Read(ret)
	return ret
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	compressions := map[string]libio.IntImageCompression{
		"none": libio.IntImageCompressionNone,
		"lz4":  libio.IntImageCompressionLz4,
	}

	for name, compression := range compressions {
		t.Run(name, func(t *testing.T) {
			img := libio.NewIntImage(randomPixels(31*17*4), 4, 31, 17)

			buf := bytes.NewBuffer(nil)
			if err := libio.EncodeIntImage(buf, img, compression); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			result, err := libio.DecodeIntImage(buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if result.Width != img.Width || result.Height != img.Height || result.Channels != img.Channels {
				t.Fatalf("Decoded dimensions should be %dx%dx%d but were %dx%dx%d",
					img.Width, img.Height, img.Channels, result.Width, result.Height, result.Channels)
			}
			for i := range img.Pix {
				if result.Pix[i] != img.Pix[i] {
					t.Fatalf("Decoded byte %d should be %02x but was %02x", i, img.Pix[i], result.Pix[i])
				}
			}
		})
	}
}

func TestEncodeSingleChannel(t *testing.T) {
	img := libio.NewCheckerboard(8, 8)

	buf := bytes.NewBuffer(nil)
	if err := libio.EncodeIntImage(buf, img, libio.IntImageCompressionLz4); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	result, err := libio.DecodeIntImage(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Channels != 1 {
		t.Errorf("Decoded image should have 1 channel but has %d", result.Channels)
	}
	for i := range img.Pix {
		if result.Pix[i] != img.Pix[i] {
			t.Fatalf("Decoded byte %d should be %02x but was %02x", i, img.Pix[i], result.Pix[i])
		}
	}
}

func TestDecodeCorruptMagic(t *testing.T) {
	img := libio.NewCheckerboard(4, 4)
	buf := bytes.NewBuffer(nil)
	if err := libio.EncodeIntImage(buf, img, libio.IntImageCompressionNone); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	data := buf.Bytes()
	data[0] ^= 0xFF

	_, err := libio.DecodeIntImage(bytes.NewBuffer(data))
	if err == nil {
		t.Error("Decode of a corrupt header should fail")
	}
}

func TestDecodeTruncated(t *testing.T) {
	img := libio.NewIntImage(randomPixels(16*16*4), 4, 16, 16)
	buf := bytes.NewBuffer(nil)
	if err := libio.EncodeIntImage(buf, img, libio.IntImageCompressionNone); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	data := buf.Bytes()
	_, err := libio.DecodeIntImage(bytes.NewBuffer(data[:len(data)/2]))
	if err == nil {
		t.Error("Decode of truncated pixel data should fail")
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := libio.DecodeIntImage(bytes.NewBuffer(nil))
	if err == nil {
		t.Error("Decode of an empty stream should fail")
	}
}
