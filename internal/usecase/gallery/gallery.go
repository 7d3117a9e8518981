package gallery

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/imaging"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

const keyPrefix = "gallery"

type ListImages struct {
	repo domain.GalleryStore
}

func NewListImages(repo domain.GalleryStore) *ListImages {
	return &ListImages{repo: repo}
}

func (uc *ListImages) Execute(ctx context.Context) ([]models.GalleryImage, error) {
	return uc.repo.ListGallery(ctx)
}

// ======================================================
// UPLOAD
// ======================================================

type UploadImageInput struct {
	AdminID      uint
	Data         []byte
	Caption      string
	DisplayOrder int
}

type UploadImage struct {
	repo    domain.GalleryStore
	storage storage.Storage
	audit   audit.Recorder
	log     *zap.Logger
}

func NewUploadImage(
	repo domain.GalleryStore,
	storage storage.Storage,
	audit audit.Recorder,
	log *zap.Logger,
) *UploadImage {
	return &UploadImage{
		repo:    repo,
		storage: storage,
		audit:   audit,
		log:     log,
	}
}

func (uc *UploadImage) Execute(
	ctx context.Context,
	in UploadImageInput,
) (*models.GalleryImage, error) {

	if len(in.Data) == 0 {
		return nil, httperr.ErrValidation("image_required", "An image file is required.")
	}

	caption := strings.TrimSpace(in.Caption)
	if len(caption) > 255 {
		return nil, httperr.ErrValidation("caption_too_long", "Caption must be at most 255 characters.")
	}

	encoded, err := imaging.ToWebP(in.Data)
	if errors.Is(err, imaging.ErrUnsupported) {
		return nil, httperr.ErrValidation("unsupported_image", "Image must be JPEG, PNG or WebP.")
	}
	if errors.Is(err, imaging.ErrTooLarge) {
		return nil, httperr.ErrValidation("image_too_large", "Image dimensions are too large.")
	}
	if err != nil {
		return nil, err
	}

	key := storage.NewKey(keyPrefix, imaging.Extension)
	url, err := uc.storage.Put(ctx, key, imaging.ContentType, encoded)
	if err != nil {
		return nil, err
	}

	img := &models.GalleryImage{
		StorageKey:   key,
		ImageURL:     url,
		Caption:      caption,
		DisplayOrder: in.DisplayOrder,
	}

	if err := uc.repo.CreateGalleryImage(ctx, img); err != nil {
		if derr := uc.storage.Delete(ctx, key); derr != nil {
			uc.log.Warn("orphaned gallery object", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   audit.ActionGalleryUploaded,
		Entity:   "gallery",
		EntityID: audit.UintPtr(img.ID),
	})

	return img, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteImage struct {
	repo    domain.GalleryStore
	storage storage.Storage
	audit   audit.Recorder
	log     *zap.Logger
}

func NewDeleteImage(
	repo domain.GalleryStore,
	storage storage.Storage,
	audit audit.Recorder,
	log *zap.Logger,
) *DeleteImage {
	return &DeleteImage{
		repo:    repo,
		storage: storage,
		audit:   audit,
		log:     log,
	}
}

func (uc *DeleteImage) Execute(ctx context.Context, adminID, imageID uint) error {
	img, err := uc.repo.GetGalleryImage(ctx, imageID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound("image_not_found", "Image not found.")
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteGalleryImage(ctx, img.ID); err != nil {
		return err
	}

	if err := uc.storage.Delete(ctx, img.StorageKey); err != nil {
		uc.log.Warn("failed to delete gallery object", zap.String("key", img.StorageKey), zap.Error(err))
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionGalleryDeleted,
		Entity:   "gallery",
		EntityID: audit.UintPtr(img.ID),
	})

	return nil
}
