package render

import (
	"hash/fnv"
	"image"
)

// NoiseSeed derives a deterministic grain seed from the render identity, so
// repeated renders of the same screenshot/locale/size are bit-identical.
func NoiseSeed(screenshotID, locale string, w, h int) uint64 {
	hsh := fnv.New64a()
	_, _ = hsh.Write([]byte(screenshotID))
	_, _ = hsh.Write([]byte{'|'})
	_, _ = hsh.Write([]byte(locale))
	_, _ = hsh.Write([]byte{'|', byte(w), byte(w >> 8), byte(w >> 16), byte(h), byte(h >> 8), byte(h >> 16)})
	return hsh.Sum64()
}

// splitmix64 is a tiny, fast PRNG; good enough for film grain.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// ApplyNoise overlays procedural grain in place. Intensity is the maximum
// per-channel deviation as a fraction of full scale; monochrome applies the
// same delta to R, G and B so noise pixels stay gray.
func ApplyNoise(img *image.NRGBA, intensity float64, monochrome bool, seed uint64) {
	if intensity <= 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}
	rng := splitmix64{state: seed}
	amp := intensity * 127

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if monochrome {
				d := noiseDelta(&rng, amp)
				img.Pix[i] = addClamped(img.Pix[i], d)
				img.Pix[i+1] = addClamped(img.Pix[i+1], d)
				img.Pix[i+2] = addClamped(img.Pix[i+2], d)
			} else {
				img.Pix[i] = addClamped(img.Pix[i], noiseDelta(&rng, amp))
				img.Pix[i+1] = addClamped(img.Pix[i+1], noiseDelta(&rng, amp))
				img.Pix[i+2] = addClamped(img.Pix[i+2], noiseDelta(&rng, amp))
			}
		}
	}
}

func noiseDelta(rng *splitmix64, amp float64) int {
	// Uniform in [-amp, amp].
	u := float64(rng.next()>>11) / float64(1<<53)
	return int((u*2 - 1) * amp)
}

func addClamped(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
