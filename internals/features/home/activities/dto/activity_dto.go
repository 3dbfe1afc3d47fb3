package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"koperasi_backend/internals/features/home/activities/model"
	"koperasi_backend/internals/helpers/dbtime"
)

// Slot gambar: field JSON/form dan field file multipart memakai urutan yang sama.
var (
	ImageURLFields  = []string{"imageUrl", "imageUrl2", "imageUrl3", "imageUrl4"}
	ImageFileFields = []string{"image", "image2", "image3", "image4"}
)

type ActivityRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description" validate:"required"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
	ImageURL2   string `json:"imageUrl2" form:"imageUrl2"`
	ImageURL3   string `json:"imageUrl3" form:"imageUrl3"`
	ImageURL4   string `json:"imageUrl4" form:"imageUrl4"`
	// Images alternatif untuk klien yang mengirim array, maksimal 4.
	Images []string `json:"images" form:"-" validate:"omitempty,max=4"`
}

func (r *ActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
}

// ImageSlots mengembalikan 4 nilai slot sesuai urutan ImageURLFields.
// Field imageUrl* diutamakan; array images dipakai bila semuanya kosong.
func (r *ActivityRequest) ImageSlots() []string {
	slots := []string{r.ImageURL, r.ImageURL2, r.ImageURL3, r.ImageURL4}
	for _, s := range slots {
		if strings.TrimSpace(s) != "" {
			return slots
		}
	}
	for i := 0; i < len(r.Images) && i < len(slots); i++ {
		slots[i] = r.Images[i]
	}
	return slots
}

// ToModel: images sudah di-resolve (upload/URL) oleh controller.
func (r *ActivityRequest) ToModel(images []string) (*model.ActivityModel, error) {
	d, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.ActivityModel{
		Title:       r.Title,
		Description: r.Description,
		Date:        datatypes.Date(d),
		Images:      compactImages(images),
	}, nil
}

// ApplyTo dipakai PUT: semua field diganti.
func (r *ActivityRequest) ApplyTo(m *model.ActivityModel, images []string) error {
	d, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return err
	}
	m.Title = r.Title
	m.Description = r.Description
	m.Date = datatypes.Date(d)
	m.Images = compactImages(images)
	return nil
}

func compactImages(in []string) []string {
	out := make([]string, 0, model.MaxActivityImages)
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" && len(out) < model.MaxActivityImages {
			out = append(out, s)
		}
	}
	return out
}

type ActivityResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	ImageURL    *string   `json:"imageUrl"`
	ImageURL2   *string   `json:"imageUrl2"`
	ImageURL3   *string   `json:"imageUrl3"`
	ImageURL4   *string   `json:"imageUrl4"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m model.ActivityModel) ActivityResponse {
	images := []string(m.Images)
	if images == nil {
		images = []string{}
	}
	at := func(i int) *string {
		if i < len(images) {
			v := images[i]
			return &v
		}
		return nil
	}
	return ActivityResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        dbtime.FormatDate(time.Time(m.Date)),
		ImageURL:    at(0),
		ImageURL2:   at(1),
		ImageURL3:   at(2),
		ImageURL4:   at(3),
		Images:      images,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(list []model.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
