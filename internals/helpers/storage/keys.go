package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	helper "koperasi_backend/internals/helpers"
)

// BuildObjectKey: {prefix}/{dir}/{slug}_{YYYYMMDD_HHMMSS}_{rand6}{ext}
func BuildObjectKey(prefix, dir, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	parts := make([]string, 0, 3)
	if p := strings.Trim(prefix, "/"); p != "" {
		parts = append(parts, p)
	}
	for _, d := range strings.Split(strings.Trim(dir, "/"), "/") {
		if strings.TrimSpace(d) != "" {
			parts = append(parts, helper.Slugify(d, 60))
		}
	}
	name := fmt.Sprintf("%s_%s_%s%s", helper.Slugify(base, 60), now.Format("20060102_150405"), randHex(3), ext)
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// DetectContentType: tentukan contentType dari ekstensi + sniff 512B.
// Reader yang dikembalikan selalu mulai dari byte pertama.
func DetectContentType(src io.Reader, filename string) (string, io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := mime.TypeByExtension(ext)

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]

	if n > 0 && (ct == "" || ct == "application/octet-stream") {
		ct = http.DetectContentType(head)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ct, io.MultiReader(bytes.NewReader(head), src), nil
}

// ExtractKeyFromPublicURL: key = path tanpa "/" depan, dengan base opsional dibuang.
func ExtractKeyFromPublicURL(publicURL, base string) (string, error) {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if i := strings.IndexByte(publicURL, '?'); i >= 0 {
		publicURL = publicURL[:i]
	}
	if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
		if strings.HasPrefix(publicURL, base+"/") {
			return strings.TrimPrefix(publicURL, base+"/"), nil
		}
	}
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
	}
	return key, nil
}

// DecodeDataURL memecah "data:<mime>;base64,<payload>".
func DecodeDataURL(s string) (mimeType string, data []byte, err error) {
	s = strings.TrimSpace(s)
	if !IsDataURL(s) {
		return "", nil, fmt.Errorf("bukan data url")
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("data url tanpa payload")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("data url harus base64")
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return mimeType, data, nil
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

// ExtensionForMime dipakai untuk memberi nama file pada data URL.
func ExtensionForMime(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func init() {
	_ = mime.AddExtensionType(".webp", "image/webp")
	_ = mime.AddExtensionType(".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	_ = mime.AddExtensionType(".xls", "application/vnd.ms-excel")
	_ = mime.AddExtensionType(".csv", "text/csv")
}
