package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucGallery "github.com/BruksfildServices01/barber-booking/internal/usecase/gallery"
)

const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	list   *ucGallery.ListImages
	upload *ucGallery.UploadImage
	remove *ucGallery.DeleteImage
}

func NewGalleryHandler(
	list *ucGallery.ListImages,
	upload *ucGallery.UploadImage,
	remove *ucGallery.DeleteImage,
) *GalleryHandler {
	return &GalleryHandler{
		list:   list,
		upload: upload,
		remove: remove,
	}
}

func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "gallery_list_failed")
		return
	}
	httpresp.List(c, images)
}

// Upload expects multipart form fields "image", "caption" and "display_order".
func (h *GalleryHandler) Upload(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "An image file is required.")
		return
	}
	if fh.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be at most 10 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, err, "gallery_upload_failed")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		httperr.FromError(c, err, "gallery_upload_failed")
		return
	}

	order, _ := strconv.Atoi(c.PostForm("display_order"))

	img, err := h.upload.Execute(c.Request.Context(), ucGallery.UploadImageInput{
		AdminID:      adminID,
		Data:         data,
		Caption:      c.PostForm("caption"),
		DisplayOrder: order,
	})
	if err != nil {
		httperr.FromError(c, err, "gallery_upload_failed")
		return
	}

	httpresp.Created(c, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	adminID, _ := middleware.CurrentUserID(c)

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), adminID, id); err != nil {
		httperr.FromError(c, err, "gallery_delete_failed")
		return
	}
	httpresp.Success(c)
}
