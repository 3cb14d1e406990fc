package ai

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// prepareImage sniffs the image type and shrinks images larger than maxDim on either side.
func prepareImage(data []byte, maxDim int) (*Media, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("unsupported media type %s", mtype.String())
	}
	media := &Media{Data: data, MIMEType: mtype.String()}
	if maxDim <= 0 {
		return media, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		// formats imaging cannot decode are sent unchanged
		return media, nil
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return media, nil
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return &Media{Data: buf.Bytes(), MIMEType: "image/jpeg"}, nil
}
