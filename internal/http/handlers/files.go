package handlers

import (
	"net/http"

	"eventhub/internal/domain/models"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	Files services.FileService
}

// Upload accepts multipart form-data with one or more "files" parts plus
// optional "file_type" and "alt_text" fields.
func (h FileHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		Fail(c, http.StatusBadRequest, "multipart form is required")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		Fail(c, http.StatusBadRequest, "at least one file is required")
		return
	}

	fileType := c.PostForm("file_type")
	if fileType == "" {
		fileType = models.FileTypeImage
	}

	uploaded, err := h.Files.UploadFiles(c.Request.Context(), fileType, c.PostForm("alt_text"), files)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "files uploaded successfully", uploaded)
}

func (h FileHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "file_type")

	files, total, err := h.Files.ListFiles(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "files fetched successfully", files, p, total)
}

func (h FileHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	file, err := h.Files.GetFile(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "file fetched successfully", file)
}

// Update replaces the stored blob when a new "file" part is present and
// patches metadata from the form fields.
func (h FileHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.FileUpdate
	if ft := c.PostForm("file_type"); ft != "" {
		upd.FileType = &ft
	}
	if alt := c.PostForm("alt_text"); alt != "" {
		upd.AltText = &alt
	}

	replacement, err := c.FormFile("file")
	if err != nil {
		replacement = nil
	}

	file, err := h.Files.UpdateFile(c.Request.Context(), id, replacement, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "file updated successfully", file)
}

func (h FileHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Files.DeleteFile(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "file deleted successfully", nil)
}
