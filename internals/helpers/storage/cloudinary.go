package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"koperasi_backend/internals/configs"
)

// CloudinaryStore menyimpan gambar sebagai resource "image" dan dokumen sebagai "raw".
type CloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinaryStoreFromEnv() (*CloudinaryStore, error) {
	cloudName := configs.GetEnv("CLOUDINARY_CLOUD_NAME")
	key := configs.GetEnv("CLOUDINARY_API_KEY")
	secret := configs.GetEnv("CLOUDINARY_API_SECRET")
	if cloudName == "" || key == "" || secret == "" {
		return nil, fmt.Errorf("missing env: CLOUDINARY_CLOUD_NAME/API_KEY/API_SECRET")
	}
	cld, err := cloudinary.NewFromParams(cloudName, key, secret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &CloudinaryStore{cld: cld, cloudName: cloudName}, nil
}

func (s *CloudinaryStore) Name() string { return "cloudinary" }

func resourceTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}

// publicIDForKey: resource image tanpa ekstensi, raw tetap dengan ekstensi.
func publicIDForKey(key, resourceType string) string {
	if resourceType == "image" {
		return strings.TrimSuffix(key, path.Ext(key))
	}
	return key
}

func (s *CloudinaryStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	rt := resourceTypeFor(contentType)
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicIDForKey(key, rt),
		ResourceType: rt,
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload error: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStore) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	rt, publicID, err := ExtractCloudinaryPublicID(publicURL)
	if err != nil {
		return fmt.Errorf("could not extract public ID: %w", err)
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: rt,
	})
	if err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("delete error: %s", resp.Error.Message)
	}
	return nil
}

func (s *CloudinaryStore) Owns(publicURL string) bool {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return false
	}
	return u.Host == "res.cloudinary.com" && strings.HasPrefix(u.Path, "/"+s.cloudName+"/")
}

var reCloudinaryVersion = regexp.MustCompile(`^v\d+$`)

// ExtractCloudinaryPublicID membaca
// https://res.cloudinary.com/<cloud>/<resource_type>/upload/v123/<public_id>[.ext]
func ExtractCloudinaryPublicID(publicURL string) (resourceType, publicID string, err error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[2] != "upload" {
		return "", "", fmt.Errorf("invalid cloudinary URL format")
	}
	resourceType = parts[1]
	rest := parts[3:]
	if len(rest) > 1 && reCloudinaryVersion.MatchString(rest[0]) {
		rest = rest[1:]
	}
	publicID = strings.Join(rest, "/")
	if resourceType == "image" {
		publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	}
	if publicID == "" {
		return "", "", fmt.Errorf("invalid cloudinary URL format")
	}
	return resourceType, publicID, nil
}
