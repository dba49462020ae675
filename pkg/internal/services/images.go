package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeImageDataURL turns an uploaded file into a data URL usable as a post image.
func EncodeImageDataURL(data []byte, maxSize int) (string, error) {
	if len(data) == 0 {
		return "", ValidationError{Field: "image", Reason: "is empty"}
	}
	if maxSize > 0 && len(data) > maxSize {
		return "", ValidationError{Field: "image", Reason: fmt.Sprintf("is larger than %d bytes", maxSize)}
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ValidationError{Field: "image", Reason: fmt.Sprintf("has unsupported type %s", mime.String())}
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
