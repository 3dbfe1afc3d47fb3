package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/configs"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Driver penyimpanan (OSS, Cloudinary, B2) cukup mengimplementasikan ObjectStore;
konversi WebP, batas ukuran dan penamaan key diurus di sini.
*/
type BlobService interface {
	// UploadImage: re-encode ke WebP lalu simpan di dir.
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadImageBytes: sama seperti UploadImage, sumbernya []byte (mis. data URL base64).
	UploadImageBytes(ctx context.Context, dir, filename string, data []byte) (publicURL string, err error)
	// UploadFile: simpan apa adanya (PDF/Excel).
	UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, contentType string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
	// Owns: true bila URL berasal dari storage ini (URL eksternal tidak boleh dihapus).
	Owns(publicURL string) bool
}

// ObjectStore adalah kontrak minimal sebuah driver.
type ObjectStore interface {
	Name() string
	Put(ctx context.Context, key string, r io.Reader, contentType string) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
	Owns(publicURL string) bool
}

// ObjectInfo dipakai reaper untuk menilai umur object.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ObjectLister opsional; hanya driver yang bisa list (OSS, B2) ikut reaper.
type ObjectLister interface {
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	DeleteKeys(ctx context.Context, keys []string) error
	PublicURL(key string) string
}

var (
	MaxImageSize = int64(5 * 1024 * 1024)
	MaxFileSize  = int64(10 * 1024 * 1024)

	// ErrStorageDisabled dikembalikan NewBlobServiceFromEnv saat STORAGE_DRIVER=none.
	ErrStorageDisabled = errors.New("storage disabled")
)

// Service menggabungkan ObjectStore + aturan upload aplikasi.
type Service struct {
	store  ObjectStore
	prefix string
	webp   WebPOptions
}

func NewService(store ObjectStore, prefix string, opts WebPOptions) *Service {
	return &Service{
		store:  store,
		prefix: strings.Trim(prefix, "/"),
		webp:   opts,
	}
}

func (s *Service) Store() ObjectStore { return s.store }
func (s *Service) Prefix() string     { return s.prefix }

// NewBlobServiceFromEnv memilih driver berdasarkan STORAGE_DRIVER (oss|cloudinary|b2|none).
func NewBlobServiceFromEnv() (*Service, error) {
	prefix := configs.GetEnv("STORAGE_PREFIX", "koperasi")
	opts := DefaultWebPOptionsFromEnv()

	var (
		store ObjectStore
		err   error
	)
	switch driver := strings.ToLower(configs.GetEnv("STORAGE_DRIVER", "none")); driver {
	case "none", "off", "":
		return nil, ErrStorageDisabled
	case "oss":
		store, err = NewOSSServiceFromEnv()
	case "cloudinary":
		store, err = NewCloudinaryStoreFromEnv()
	case "b2":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		store, err = NewB2StoreFromEnv(ctx)
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER tidak dikenal: %s", driver)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] blob storage driver=%s prefix=%s", store.Name(), prefix)
	return NewService(store, prefix, opts), nil
}

/* =======================================================================
   Upload
======================================================================= */

func (s *Service) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxImageSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran gambar maksimal 5MB")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return s.UploadImageBytes(ctx, dir, fh.Filename, all)
}

func (s *Service) UploadImageBytes(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if int64(len(data)) > MaxImageSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran gambar maksimal 5MB")
	}
	webpData, err := ConvertToWebPWithOptions(data, filename, s.webp)
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) || errors.Is(err, ErrEmptyFile) {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpg/png/webp)")
		}
		return "", err
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	key := BuildObjectKey(s.prefix, dir, base+".webp", time.Now())
	url, err := s.store.Put(ctx, key, bytes.NewReader(webpData), "image/webp")
	if err != nil {
		log.Printf("[ERROR] upload %s ke %s gagal: %v", key, s.store.Name(), err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke storage")
	}
	return url, nil
}

func (s *Service) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxFileSize {
		return "", "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 10MB")
	}
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, reader, err := DetectContentType(src, fh.Filename)
	if err != nil {
		return "", "", err
	}
	key := BuildObjectKey(s.prefix, dir, fh.Filename, time.Now())
	url, err := s.store.Put(ctx, key, reader, ct)
	if err != nil {
		log.Printf("[ERROR] upload %s ke %s gagal: %v", key, s.store.Name(), err)
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke storage")
	}
	return url, ct, nil
}

/* =======================================================================
   Delete
======================================================================= */

func (s *Service) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	if !s.store.Owns(publicURL) {
		return fmt.Errorf("url bukan milik storage %s: %s", s.store.Name(), publicURL)
	}
	return s.store.DeleteByPublicURL(ctx, publicURL)
}

func (s *Service) Owns(publicURL string) bool {
	return strings.TrimSpace(publicURL) != "" && s.store.Owns(publicURL)
}

// DeleteBestEffort menghapus URL milik storage; kegagalan cukup di-log.
// Dipakai saat baris DB tetap harus jalan walau blob gagal dihapus.
func DeleteBestEffort(ctx context.Context, svc BlobService, urls ...string) {
	if svc == nil {
		return
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" || !svc.Owns(u) {
			continue
		}
		if err := svc.DeleteByPublicURL(ctx, u); err != nil {
			log.Printf("[WARN] gagal hapus blob %s: %v", u, err)
		}
	}
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	UploadImageBytesFn  func(ctx context.Context, dir, filename string, data []byte) (string, error)
	UploadFileFn        func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
	OwnsFn              func(publicURL string) bool

	Deleted []string
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, fh)
}

func (m *MockBlobService) UploadImageBytes(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if m.UploadImageBytesFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageBytesFn(ctx, dir, filename, data)
}

func (m *MockBlobService) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if m.UploadFileFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadFileFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	m.Deleted = append(m.Deleted, publicURL)
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}

func (m *MockBlobService) Owns(publicURL string) bool {
	if m.OwnsFn == nil {
		return strings.HasPrefix(publicURL, "https://blob.test/")
	}
	return m.OwnsFn(publicURL)
}
