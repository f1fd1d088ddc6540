package routes

import (
	"github.com/gofiber/fiber/v2"

	"companydocs/interfaces/api/handlers"
)

func SetupCompanyRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	companies := api.Group("/companies")
	companies.Use(protected)

	companies.Post("/", h.CompanyHandler.CreateCompany)
	companies.Get("/", h.CompanyHandler.ListCompanies)

	// finder routes before /:id so the literal segments win
	companies.Get("/cnpj/:cnpj", h.CompanyHandler.GetCompanyByCnpj)
	companies.Get("/legal-name/:name", h.CompanyHandler.GetCompanyByLegalName)
	companies.Get("/trade-name/:name", h.CompanyHandler.GetCompanyByTradeName)
	companies.Get("/email/:email", h.CompanyHandler.GetCompanyByEmail)
	companies.Get("/phone/:phone", h.CompanyHandler.GetCompanyByPhone)
	companies.Get("/size/:size", h.CompanyHandler.GetCompaniesBySize)

	companies.Get("/:id", h.CompanyHandler.GetCompany)
	companies.Put("/:id", h.CompanyHandler.UpdateCompany)
	companies.Delete("/:id", h.CompanyHandler.DeleteCompany)
}
