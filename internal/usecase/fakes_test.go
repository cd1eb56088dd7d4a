package usecase

import (
	"context"
	"fmt"
	"io"

	"apartio/internal/domain/entity"
	"apartio/internal/domain/service"
	"apartio/pkg/errors"
)

// In-memory repository fakes mirroring the document store's behavior closely
// enough for the use cases: generated IDs, NOT_FOUND on missing documents,
// equality filters with set-membership on features.

type fakeApartmentRepo struct {
	seq   int
	items map[string]*entity.Apartment
	order []string
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{items: make(map[string]*entity.Apartment)}
}

func (r *fakeApartmentRepo) Create(ctx context.Context, apartment *entity.Apartment) error {
	if apartment.ID == "" {
		r.seq++
		apartment.ID = fmt.Sprintf("apt-%d", r.seq)
	}
	copied := *apartment
	r.items[apartment.ID] = &copied
	r.order = append(r.order, apartment.ID)
	return nil
}

func (r *fakeApartmentRepo) GetByID(ctx context.Context, id string) (*entity.Apartment, error) {
	apartment, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Apartment", nil)
	}
	copied := *apartment
	return &copied, nil
}

func (r *fakeApartmentRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Apartment, error) {
	result := []*entity.Apartment{}
	for _, id := range r.order {
		apartment := r.items[id]
		if apartmentMatches(apartment, filter) {
			copied := *apartment
			result = append(result, &copied)
		}
	}
	return result, nil
}

func apartmentMatches(apartment *entity.Apartment, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "status":
			if apartment.Status != value {
				return false
			}
		case "type":
			if apartment.Type != value {
				return false
			}
		case "rooms":
			if apartment.Rooms != value {
				return false
			}
		case "features":
			wanted, _ := value.([]string)
			if !hasAnyFeature(apartment.Features, wanted) {
				return false
			}
		}
	}
	return true
}

func hasAnyFeature(features, wanted []string) bool {
	for _, w := range wanted {
		for _, f := range features {
			if f == w {
				return true
			}
		}
	}
	return false
}

func (r *fakeApartmentRepo) Update(ctx context.Context, apartment *entity.Apartment) error {
	if _, ok := r.items[apartment.ID]; !ok {
		return errors.NotFound("Apartment", nil)
	}
	copied := *apartment
	r.items[apartment.ID] = &copied
	return nil
}

func (r *fakeApartmentRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeGalleryRepo struct {
	seq   int
	items map[string]*entity.GalleryPhoto
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{items: make(map[string]*entity.GalleryPhoto)}
}

func (r *fakeGalleryRepo) Create(ctx context.Context, photo *entity.GalleryPhoto) error {
	if photo.ID == "" {
		r.seq++
		photo.ID = fmt.Sprintf("photo-%d", r.seq)
	}
	copied := *photo
	r.items[photo.ID] = &copied
	return nil
}

func (r *fakeGalleryRepo) GetByID(ctx context.Context, id string) (*entity.GalleryPhoto, error) {
	photo, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Photo", nil)
	}
	copied := *photo
	return &copied, nil
}

func (r *fakeGalleryRepo) List(ctx context.Context) ([]*entity.GalleryPhoto, error) {
	result := []*entity.GalleryPhoto{}
	for _, photo := range r.items {
		copied := *photo
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeGalleryRepo) Update(ctx context.Context, photo *entity.GalleryPhoto) error {
	if _, ok := r.items[photo.ID]; !ok {
		return errors.NotFound("Photo", nil)
	}
	copied := *photo
	r.items[photo.ID] = &copied
	return nil
}

func (r *fakeGalleryRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeProfileRepo struct {
	profile   *entity.Profile
	saveCalls int
}

func (r *fakeProfileRepo) Get(ctx context.Context) (*entity.Profile, error) {
	if r.profile == nil {
		return nil, errors.NotFound("Profile", nil)
	}
	copied := *r.profile
	return &copied, nil
}

func (r *fakeProfileRepo) Save(ctx context.Context, profile *entity.Profile) error {
	r.saveCalls++
	profile.ID = "owner"
	copied := *profile
	r.profile = &copied
	return nil
}

type fakeContactRepo struct {
	seq   int
	items map[string]*entity.ContactMessage
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{items: make(map[string]*entity.ContactMessage)}
}

func (r *fakeContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	if message.ID == "" {
		r.seq++
		message.ID = fmt.Sprintf("msg-%d", r.seq)
	}
	copied := *message
	r.items[message.ID] = &copied
	return nil
}

func (r *fakeContactRepo) GetByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	message, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	copied := *message
	return &copied, nil
}

func (r *fakeContactRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	result := []*entity.ContactMessage{}
	for _, message := range r.items {
		copied := *message
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeContactRepo) Update(ctx context.Context, message *entity.ContactMessage) error {
	if _, ok := r.items[message.ID]; !ok {
		return errors.NotFound("Message", nil)
	}
	copied := *message
	r.items[message.ID] = &copied
	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeMediaStorage struct {
	seq        int
	deleted    []string
	failDelete bool
	failUpload bool
}

func (s *fakeMediaStorage) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadResult, error) {
	if s.failUpload {
		return nil, fmt.Errorf("media host unreachable")
	}
	s.seq++
	storageID := fmt.Sprintf("%s/object-%d", folder, s.seq)
	return &service.UploadResult{
		URL:       "https://media.example.com/" + storageID,
		StorageID: storageID,
	}, nil
}

func (s *fakeMediaStorage) Delete(ctx context.Context, storageID string) error {
	if s.failDelete {
		return fmt.Errorf("media host unreachable")
	}
	s.deleted = append(s.deleted, storageID)
	return nil
}

func (s *fakeMediaStorage) Close() error {
	return nil
}
