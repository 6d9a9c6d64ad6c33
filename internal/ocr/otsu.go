package ocr

const defaultLevel = 127

// Histogram counts 8-bit grayscale pixel values.
func Histogram(pixels []byte) [256]int {
	var hist [256]int
	for _, p := range pixels {
		hist[p]++
	}
	return hist
}

// OtsuLevel picks the gray level that maximises between-class variance.
// Empty or single-valued histograms fall back to mid-gray.
func OtsuLevel(hist [256]int) uint8 {
	total := 0
	sum := 0.0
	for i, count := range hist {
		total += count
		sum += float64(i) * float64(count)
	}
	if total == 0 {
		return defaultLevel
	}

	var (
		sumB        float64
		wB          int
		maxVariance float64
		best        = defaultLevel
	)
	for i := 0; i < 256; i++ {
		wB += hist[i]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}

		sumB += float64(i) * float64(hist[i])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)

		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > maxVariance {
			maxVariance = between
			best = i
		}
	}
	return uint8(best)
}
