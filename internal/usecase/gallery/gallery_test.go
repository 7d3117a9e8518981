package gallery

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUploadListDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	store, err := storage.NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatal(err)
	}

	upload := NewUploadImage(repo, store, audit.Nop{}, zap.NewNop())

	second, err := upload.Execute(ctx, UploadImageInput{AdminID: 1, Data: samplePNG(t), Caption: "fade", DisplayOrder: 2})
	if err != nil {
		t.Fatal(err)
	}
	first, err := upload.Execute(ctx, UploadImageInput{AdminID: 1, Data: samplePNG(t), Caption: " classic ", DisplayOrder: 1})
	if err != nil {
		t.Fatal(err)
	}
	if first.Caption != "classic" || first.ImageURL == "" {
		t.Errorf("unexpected image %+v", first)
	}

	list, _ := NewListImages(repo).Execute(ctx)
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Errorf("expected display order, got %+v", list)
	}

	del := NewDeleteImage(repo, store, audit.Nop{}, zap.NewNop())
	if err := del.Execute(ctx, 1, first.ID); err != nil {
		t.Fatal(err)
	}
	if err := del.Execute(ctx, 1, first.ID); httperr.KindOf(err) != httperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpload_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	store, _ := storage.NewLocalStorage(t.TempDir(), "/media")
	upload := NewUploadImage(repo, store, audit.Nop{}, zap.NewNop())

	if _, err := upload.Execute(ctx, UploadImageInput{}); !httperr.IsBusiness(err, "image_required") {
		t.Errorf("expected image_required, got %v", err)
	}
	if _, err := upload.Execute(ctx, UploadImageInput{Data: []byte("text")}); !httperr.IsBusiness(err, "unsupported_image") {
		t.Errorf("expected unsupported_image, got %v", err)
	}
}
