package media

import (
	"fmt"
	"image"
	"os"
	"strings"

	// Decoders for the image formats the catalog hosts actually serve.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
)

// imageInfo is the result of inspecting a downloaded image file.
type imageInfo struct {
	Mime   string
	Ext    string
	Width  int
	Height int
	Size   int64
}

// inspectImage derives mime type, extension, byte size, and pixel dimensions
// from a downloaded file. Content sniffing decides the type; the remote
// filename is not trusted.
func inspectImage(filePath string) (*imageInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("not an image: detected %s", mtype.String())
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image dimensions: %w", err)
	}

	return &imageInfo{
		Mime:   mtype.String(),
		Ext:    mtype.Extension(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   stat.Size(),
	}, nil
}
