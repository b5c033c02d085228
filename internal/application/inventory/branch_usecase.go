package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/commerce-pro/internal/application/dto"
	"github.com/tu-usuario/commerce-pro/internal/domain"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
	"github.com/tu-usuario/commerce-pro/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una nueva sucursal.
func (uc *BranchUseCase) Create(userID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	canShip := true
	if in.CanShip != nil {
		canShip = *in.CanShip
	}
	branch := &entity.Branch{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		CanShip: canShip,
		Audit:   entity.NewAudit(time.Now(), userID),
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal.
func (uc *BranchUseCase) Update(id, userID string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.CanShip != nil {
		branch.CanShip = *in.CanShip
	}
	branch.Touch(time.Now(), userID)
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales con paginación.
func (uc *BranchUseCase) List(limit, offset int) ([]dto.BranchResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Delete hace borrado lógico de una sucursal.
func (uc *BranchUseCase) Delete(id, userID string) error {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id, userID)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		CanShip:   b.CanShip,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
