package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"companydocs/domain/dto"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type FileHandler struct {
	fileService services.FileService
	maxUpload   int64
}

func NewFileHandler(fileService services.FileService, maxUpload int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxUpload:   maxUpload,
	}
}

// UploadFile stores the multipart "file" part under the company named by the
// "company_id" form field. The company must belong to the caller.
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"file": "file is required"})
	}
	if header.Size > h.maxUpload {
		return utils.ValidationErrorResponse(c, map[string]string{"file": "file exceeds the maximum size"})
	}

	companyID, err := uuid.Parse(c.FormValue("company_id"))
	if err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"company_id": "company_id must be a valid UUID"})
	}

	file, err := h.fileService.Upload(c.UserContext(), caller.ID, header, companyID)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "File uploaded",
		"fileId", file.ID, "companyId", companyID, "size", file.Size)
	return utils.CreatedResponse(c, dto.FileToResponse(file, ""))
}

// ListFiles returns every file across the caller's companies, each with a
// freshly resolved access URL.
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	files, err := h.fileService.ListForCaller(c.UserContext(), caller.ID)
	if err != nil {
		return serviceError(c, err)
	}

	out := dto.FileListResponse{Files: make([]dto.FileResponse, 0, len(files))}
	for _, f := range files {
		out.Files = append(out.Files, dto.FileToResponse(f.File, f.URL))
	}

	return utils.SuccessResponse(c, out)
}

func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid file id")
	}

	file, err := h.fileService.Get(c.UserContext(), caller.ID, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.FileToResponse(file.File, file.URL))
}

// UpdateFile replaces the stored content with a new multipart "file" part and
// optionally moves the file to another of the caller's companies.
func (h *FileHandler) UpdateFile(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid file id")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return utils.ValidationErrorResponse(c, map[string]string{"file": "file is required"})
	}
	if header.Size > h.maxUpload {
		return utils.ValidationErrorResponse(c, map[string]string{"file": "file exceeds the maximum size"})
	}

	companyID := uuid.Nil
	if raw := c.FormValue("company_id"); raw != "" {
		companyID, err = uuid.Parse(raw)
		if err != nil {
			return utils.ValidationErrorResponse(c, map[string]string{"company_id": "company_id must be a valid UUID"})
		}
	}

	file, err := h.fileService.Update(c.UserContext(), caller.ID, id, header, companyID)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "File updated", "fileId", file.ID, "size", file.Size)
	return utils.SuccessResponse(c, dto.FileToResponse(file, ""))
}

func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid file id")
	}

	if err := h.fileService.Delete(c.UserContext(), caller.ID, id); err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "File deleted", "fileId", id)
	return utils.NoContentResponse(c)
}
