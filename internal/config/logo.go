// logo.go — branding logo validation, applied before a configured logo
// replaces the default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxLogoBytes is the upload ceiling for branding logos.
const MaxLogoBytes = 2 << 20 // 2 MiB

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// ErrLogoNotPNG rejects any non-PNG logo file.
var ErrLogoNotPNG = errors.New("仅支持上传 PNG 格式的图片")

// ErrLogoTooLarge rejects logos above MaxLogoBytes.
var ErrLogoTooLarge = errors.New("图片大小不能超过 2MB")

// ValidateLogo checks that path names a PNG no larger than MaxLogoBytes.
// Content is sniffed, not trusted from the extension.
func ValidateLogo(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat logo: %w", err)
	}
	if info.Size() > MaxLogoBytes {
		return ErrLogoTooLarge
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(pngMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return ErrLogoNotPNG
	}
	if !bytes.Equal(header, pngMagic) {
		return ErrLogoNotPNG
	}
	return nil
}
