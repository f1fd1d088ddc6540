package dto

import "companydocs/domain/models"

func UserToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func CompanyToResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Cnpj:      c.Cnpj,
		LegalName: c.LegalName,
		TradeName: c.TradeName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Size:      c.Size,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CompaniesToResponse(companies []*models.Company) CompanyListResponse {
	out := CompanyListResponse{Companies: make([]CompanyResponse, 0, len(companies))}
	for _, c := range companies {
		out.Companies = append(out.Companies, CompanyToResponse(c))
	}
	return out
}

func FileToResponse(f *models.File, url string) FileResponse {
	return FileResponse{
		ID:        f.ID,
		CompanyID: f.CompanyID,
		UserID:    f.UserID,
		Name:      f.Name,
		HashName:  f.HashName,
		Path:      f.Path,
		MimeType:  f.MimeType,
		Size:      f.Size,
		URL:       url,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
