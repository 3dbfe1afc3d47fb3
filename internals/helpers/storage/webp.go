package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"koperasi_backend/internals/configs"
)

var (
	ErrEmptyFile        = errors.New("empty file")
	ErrUnsupportedImage = errors.New("format tidak didukung")
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW        int     // batas lebar (resize keep-aspect)
	MaxH        int     // batas tinggi
	TargetKB    int     // target ukuran; 0 = non-aktif (pakai Quality saja)
	Quality     float32 // quality saat TargetKB=0
	MinQ        float32 // batas bawah binary search
	MaxQ        float32 // batas atas binary search
	ToleranceKB int     // toleransi di atas target
	MinW        int     // lebar minimum saat iterative downscale
	MinH        int
	ScaleStep   float32 // faktor perkecil tiap iterasi (0<step<1)
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:        configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:        configs.GetEnvInt("IMAGE_WEBP_MAX_H", 1600),
		TargetKB:    configs.GetEnvInt("IMAGE_WEBP_TARGET_KB", 0),
		Quality:     float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80)),
		MinQ:        45,
		MaxQ:        85,
		ToleranceKB: configs.GetEnvInt("IMAGE_WEBP_TOLERANCE_KB", 8),
		MinW:        480,
		MinH:        480,
		ScaleStep:   0.85,
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/gif/webp) dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, ErrEmptyFile
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case strings.Contains(ct, "webp") || ext == ".webp":
		return webp.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "png"), strings.Contains(ct, "gif"),
		ext == ".jpg", ext == ".jpeg", ext == ".png", ext == ".gif":
		// AutoOrientation membaca EXIF agar foto HP tidak miring
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	default:
		return nil, fmt.Errorf("%w: %s / %s", ErrUnsupportedImage, ct, ext)
	}
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	if (maxW > 0 && b.Dx() > maxW) || (maxH > 0 && b.Dy() > maxH) {
		if maxW <= 0 {
			maxW = b.Dx()
		}
		if maxH <= 0 {
			maxH = b.Dy()
		}
		return imaging.Fit(src, maxW, maxH, imaging.CatmullRom)
	}
	return src
}

func encodeQ(img image.Image, q float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeToWebP: TargetKB=0 → encode sekali; selain itu binary search quality
// lalu perkecil dimensi bertahap sampai masuk target atau mentok minimum.
func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(img, q)
	}

	target := opt.TargetKB * 1024
	tol := opt.ToleranceKB * 1024
	minQ, maxQ := opt.MinQ, opt.MaxQ
	if minQ > maxQ {
		minQ, maxQ = maxQ, minQ
	}
	step := float64(opt.ScaleStep)
	if step <= 0 || step >= 1 {
		step = 0.85
	}

	cur := img
	var last []byte
	for attempt := 0; attempt < 6; attempt++ {
		low, high := minQ, maxQ
		var best []byte
		for i := 0; i < 8; i++ {
			q := (low + high) / 2
			data, err := encodeQ(cur, q)
			if err != nil {
				return nil, err
			}
			if len(data) <= target+tol {
				best = data
				low = q
			} else {
				high = q
			}
		}
		if best == nil {
			var err error
			if best, err = encodeQ(cur, minQ); err != nil {
				return nil, err
			}
		}
		last = best
		if len(best) <= target+tol {
			return best, nil
		}

		b := cur.Bounds()
		if b.Dx() <= opt.MinW && b.Dy() <= opt.MinH {
			return best, nil
		}
		scale := math.Min(math.Sqrt(float64(target+tol)/float64(len(best)))*0.95, step)
		nw := int(math.Max(float64(opt.MinW), math.Round(float64(b.Dx())*scale)))
		cur = imaging.Resize(cur, nw, 0, imaging.CatmullRom)
	}
	return last, nil
}

// ConvertToWebPWithOptions: decode → resize (opsional) → encode webp
func ConvertToWebPWithOptions(all []byte, filename string, opts WebPOptions) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	return encodeToWebP(img, opts)
}
