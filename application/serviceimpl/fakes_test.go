package serviceimpl

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
	"companydocs/domain/ports"
)

// In-memory repository fakes mirroring the gorm-backed contracts: GetBy*
// return ErrNotFound for a missing row, Update/Delete report false instead of
// an error when the id does not exist.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*models.User
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return &apperrors.DuplicateError{Field: "email"}
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "updated_at":
			u.UpdatedAt = v.(time.Time)
		}
	}
	return true, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uuid.UUID]*models.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Cnpj == company.Cnpj || c.LegalName == company.LegalName || c.Email == company.Email {
			return &apperrors.DuplicateError{Field: "cnpj, legalName or email"}
		}
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCompanyRepo) findOne(match func(*models.Company) bool) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if match(c) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCompanyRepo) GetByCnpj(_ context.Context, cnpj string) (*models.Company, error) {
	return r.findOne(func(c *models.Company) bool { return c.Cnpj == cnpj })
}

func (r *fakeCompanyRepo) GetByLegalName(_ context.Context, legalName string) (*models.Company, error) {
	return r.findOne(func(c *models.Company) bool { return c.LegalName == legalName })
}

func (r *fakeCompanyRepo) GetByTradeName(_ context.Context, tradeName string) (*models.Company, error) {
	return r.findOne(func(c *models.Company) bool { return c.TradeName == tradeName })
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*models.Company, error) {
	return r.findOne(func(c *models.Company) bool { return c.Email == email })
}

func (r *fakeCompanyRepo) GetByPhone(_ context.Context, phone string) (*models.Company, error) {
	return r.findOne(func(c *models.Company) bool { return c.Phone == phone })
}

func (r *fakeCompanyRepo) ListBySize(_ context.Context, size string) ([]*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Company{}
	for _, c := range r.companies {
		if c.Size == size {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Company{}
	for _, c := range r.companies {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "cnpj":
			c.Cnpj = v.(string)
		case "legal_name":
			c.LegalName = v.(string)
		case "trade_name":
			c.TradeName = v.(string)
		case "email":
			c.Email = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "address":
			c.Address = v.(string)
		case "size":
			c.Size = v.(string)
		case "updated_at":
			c.UpdatedAt = v.(time.Time)
		}
	}
	return true, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

type fakeFileRepo struct {
	mu        sync.Mutex
	files     map[uuid.UUID]*models.File
	createErr error
	updateErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uuid.UUID]*models.File{}}
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.files[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeFileRepo) GetByPath(_ context.Context, path string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.files {
		if f.Path == path {
			cp := *f
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeFileRepo) ListByCompanyIDs(_ context.Context, ids []uuid.UUID) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idSet := map[uuid.UUID]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	out := []*models.File{}
	for _, f := range r.files {
		if idSet[f.CompanyID] {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	f, ok := r.files[id]
	if !ok {
		return false, nil
	}
	for k, v := range updates {
		switch k {
		case "company_id":
			f.CompanyID = v.(uuid.UUID)
		case "name":
			f.Name = v.(string)
		case "hash_name":
			f.HashName = v.(string)
		case "path":
			f.Path = v.(string)
		case "mime_type":
			f.MimeType = v.(string)
		case "size":
			f.Size = v.(int64)
		case "updated_at":
			f.UpdatedAt = v.(time.Time)
		}
	}
	return true, nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return false, nil
	}
	delete(r.files, id)
	return true, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*models.AuthToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[uuid.UUID]*models.AuthToken{}}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *models.AuthToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetByID(_ context.Context, id uuid.UUID) (*models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTokenRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

func (r *fakeTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

// fakeStorage is an in-memory StoragePort with per-path failure injection.
type fakeStorage struct {
	mu         sync.Mutex
	objects    map[string]ports.ObjectInfo
	uploadErr  error
	failDelete map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:    map[string]ports.ObjectInfo{},
		failDelete: map[string]bool{},
	}
}

func (s *fakeStorage) Upload(_ context.Context, reader io.Reader, path string, size int64, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if reader != nil {
		_, _ = io.Copy(io.Discard, reader)
	}
	s.objects[path] = ports.ObjectInfo{Path: path, Size: size, LastModified: time.Now()}
	return path, nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete[path] {
		return &apperrors.StorageError{Op: "delete", Path: path, Err: context.DeadlineExceeded}
	}
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) URL(_ context.Context, path string) (string, error) {
	return "https://storage.test/" + path, nil
}

func (s *fakeStorage) List(_ context.Context, prefix string) ([]ports.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []ports.ObjectInfo{}
	for path, obj := range s.objects {
		if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (s *fakeStorage) has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

func (s *fakeStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *fakeStorage) setModified(path string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.objects[path]
	obj.LastModified = t
	s.objects[path] = obj
}
