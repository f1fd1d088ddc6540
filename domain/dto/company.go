package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Cnpj      string `json:"cnpj" validate:"required,max=14"`
	LegalName string `json:"legalName" validate:"required,min=1,max=255"`
	TradeName string `json:"tradeName" validate:"omitempty,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Address   string `json:"address" validate:"required,max=255"`
	Size      string `json:"size" validate:"required,oneof=MEI ME EPP EMP EG"`
}

type UpdateCompanyRequest struct {
	Cnpj      string `json:"cnpj" validate:"omitempty,max=14"`
	LegalName string `json:"legalName" validate:"omitempty,min=1,max=255"`
	TradeName string `json:"tradeName" validate:"omitempty,max=255"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	Size      string `json:"size" validate:"omitempty,oneof=MEI ME EPP EMP EG"`
}

type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Cnpj      string    `json:"cnpj"`
	LegalName string    `json:"legalName"`
	TradeName string    `json:"tradeName,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}
