package ocr

import (
	"fmt"

	"gocv.io/x/gocv"
)

// errUndecodable marks bytes OpenCV cannot decode, such as GIF. Tesseract may
// still read them directly.
var errUndecodable = fmt.Errorf("%w: format not supported by OpenCV", ErrImageRead)

// Preprocess decodes an image as 8-bit grayscale and binarizes it at the Otsu
// level so Tesseract sees dark glyphs on a clean background. The result is
// PNG encoded. Deeper images are scaled down by the decoder, not clipped.
func Preprocess(data []byte) ([]byte, int, error) {
	gray, err := gocv.IMDecode(data, gocv.IMReadGrayScale)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrImageRead, err)
	}
	defer gray.Close()
	if gray.Empty() {
		return nil, 0, errUndecodable
	}
	if gray.Type() != gocv.MatTypeCV8UC1 {
		return nil, 0, fmt.Errorf("%w: unexpected pixel type %v", ErrImageRead, gray.Type())
	}

	pixels, err := gray.DataPtrUint8()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrImageRead, err)
	}
	level := OtsuLevel(Histogram(pixels))

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(gray, &bin, float32(level), 255, gocv.ThresholdBinary)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, bin)
	if err != nil {
		return nil, 0, fmt.Errorf("encode preprocessed image: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, int(level), nil
}
