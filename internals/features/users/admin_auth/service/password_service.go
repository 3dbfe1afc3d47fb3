package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"koperasi_backend/internals/features/users/admin_auth/repository"
)

var (
	ErrNotSeeded     = errors.New("admin credential belum dibuat")
	ErrWrongPassword = errors.New("password salah")
)

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

type PasswordService struct {
	Repo repository.IAdminCredentialRepository
	Now  func() time.Time
}

func NewPasswordService(repo repository.IAdminCredentialRepository) *PasswordService {
	return &PasswordService{Repo: repo, Now: time.Now}
}

// EnsureSeeded membuat credential dari ADMIN_PASSWORD bila tabel masih kosong.
// Credential yang sudah ada tidak pernah ditimpa.
func (s *PasswordService) EnsureSeeded(ctx context.Context, password string) error {
	existing, err := s.Repo.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if strings.TrimSpace(password) == "" {
		log.Println("[WARN] ADMIN_PASSWORD kosong, login admin tidak tersedia")
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.Repo.SaveHash(ctx, hash, s.Now().UTC()); err != nil {
		return err
	}
	log.Println("[INFO] admin credential di-seed dari ADMIN_PASSWORD")
	return nil
}

func (s *PasswordService) Verify(ctx context.Context, password string) error {
	cred, err := s.Repo.Get(ctx)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrNotSeeded
	}
	if CheckPasswordHash(cred.PasswordHash, password) != nil {
		return ErrWrongPassword
	}
	return nil
}

func (s *PasswordService) Change(ctx context.Context, oldPassword, newPassword string) error {
	if err := s.Verify(ctx, oldPassword); err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Repo.SaveHash(ctx, hash, s.Now().UTC())
}
