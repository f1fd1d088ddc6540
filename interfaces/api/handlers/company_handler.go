package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"companydocs/domain/dto"
	"companydocs/domain/models"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	company, err := h.companyService.Create(c.UserContext(), caller.ID, &req)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "Company created", "companyId", company.ID, "userId", caller.ID)
	return utils.CreatedResponse(c, dto.CompanyToResponse(company))
}

// ListCompanies returns every company the caller owns.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	companies, err := h.companyService.ListForOwner(c.UserContext(), caller.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CompaniesToResponse(companies))
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid company id")
	}

	company, err := h.companyService.GetByID(c.UserContext(), caller.ID, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CompanyToResponse(company))
}

// findCompany handles the single-column finder routes; the service guards
// ownership, so a hit on another tenant's value reads as not found.
func (h *CompanyHandler) findCompany(c *fiber.Ctx, find func(callerID uuid.UUID, value string) (*models.Company, error), param string) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	company, err := find(caller.ID, c.Params(param))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CompanyToResponse(company))
}

func (h *CompanyHandler) GetCompanyByCnpj(c *fiber.Ctx) error {
	return h.findCompany(c, func(callerID uuid.UUID, v string) (*models.Company, error) {
		return h.companyService.FindByCnpj(c.UserContext(), callerID, v)
	}, "cnpj")
}

func (h *CompanyHandler) GetCompanyByLegalName(c *fiber.Ctx) error {
	return h.findCompany(c, func(callerID uuid.UUID, v string) (*models.Company, error) {
		return h.companyService.FindByLegalName(c.UserContext(), callerID, v)
	}, "name")
}

func (h *CompanyHandler) GetCompanyByTradeName(c *fiber.Ctx) error {
	return h.findCompany(c, func(callerID uuid.UUID, v string) (*models.Company, error) {
		return h.companyService.FindByTradeName(c.UserContext(), callerID, v)
	}, "name")
}

func (h *CompanyHandler) GetCompanyByEmail(c *fiber.Ctx) error {
	return h.findCompany(c, func(callerID uuid.UUID, v string) (*models.Company, error) {
		return h.companyService.FindByEmail(c.UserContext(), callerID, v)
	}, "email")
}

func (h *CompanyHandler) GetCompanyByPhone(c *fiber.Ctx) error {
	return h.findCompany(c, func(callerID uuid.UUID, v string) (*models.Company, error) {
		return h.companyService.FindByPhone(c.UserContext(), callerID, v)
	}, "phone")
}

func (h *CompanyHandler) GetCompaniesBySize(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	companies, err := h.companyService.FindBySize(c.UserContext(), caller.ID, c.Params("size"))
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CompaniesToResponse(companies))
}

func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid company id")
	}

	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	company, err := h.companyService.Update(c.UserContext(), caller.ID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "Company updated", "companyId", company.ID)
	return utils.SuccessResponse(c, dto.CompanyToResponse(company))
}

func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid company id")
	}

	if err := h.companyService.Delete(c.UserContext(), caller.ID, id); err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(c.UserContext(), "Company deleted", "companyId", id)
	return utils.NoContentResponse(c)
}
