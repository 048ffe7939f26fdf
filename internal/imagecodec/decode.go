package imagecodec

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"strings"

	// Registered decoders define the accepted formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var (
	ErrInvalidBase64 = errors.New("invalid base64 payload")
	ErrNotAnImage    = errors.New("payload is not a supported image")
	ErrTooLarge      = errors.New("image exceeds maximum size")
)

// SupportedFormats lists the file extensions accepted by Decode.
var SupportedFormats = []string{"jpg", "jpeg", "png", "gif", "bmp"}

// Image is a decoded inbound document image.
type Image struct {
	Data     []byte
	Format   string
	MIMEHint string
	Width    int
	Height   int
}

// Hash returns the hex SHA-256 of the raw image bytes.
func (img *Image) Hash() string {
	sum := sha256.Sum256(img.Data)
	return hex.EncodeToString(sum[:])
}

// StripDataURL removes a "data:<mime>;base64," prefix and returns the payload
// together with the declared MIME type.
func StripDataURL(s string) (payload, mime string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return s, ""
	}
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return s, ""
	}
	meta := s[len("data:"):idx]
	if semi := strings.IndexByte(meta, ';'); semi >= 0 {
		mime = meta[:semi]
	} else {
		mime = meta
	}
	return s[idx+1:], mime
}

// DecodeBase64 decodes standard base64, falling back to URL-safe base64.
func DecodeBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return nil, ErrInvalidBase64
}

// Decode turns an inbound base64 string (optionally a data URL) into an Image.
// maxSize bounds the decoded byte length; zero disables the check.
func Decode(encoded string, maxSize int) (*Image, error) {
	payload, mime := StripDataURL(encoded)
	if payload == "" {
		return nil, ErrInvalidBase64
	}

	data, err := DecodeBase64(payload)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && len(data) > maxSize {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	return &Image{
		Data:     data,
		Format:   format,
		MIMEHint: mime,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
