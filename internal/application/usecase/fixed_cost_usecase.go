package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// FixedCostUseCase casos de uso para costos fijos mensuales.
type FixedCostUseCase struct {
	repo repository.FixedCostRepository
}

// NewFixedCostUseCase construye el caso de uso.
func NewFixedCostUseCase(repo repository.FixedCostRepository) *FixedCostUseCase {
	return &FixedCostUseCase{repo: repo}
}

// Create crea un costo fijo activo.
func (uc *FixedCostUseCase) Create(in dto.CreateFixedCostRequest) (*dto.FixedCostResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "no puede ser negativo")
	}
	now := time.Now().UTC()
	cost := &entity.FixedCost{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Amount:    in.Amount.Round(2),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cost); err != nil {
		return nil, err
	}
	return toFixedCostResponse(cost), nil
}

// ListActive lista los costos fijos activos.
func (uc *FixedCostUseCase) ListActive() ([]dto.FixedCostResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FixedCostResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toFixedCostResponse(c))
	}
	return items, nil
}

// Update actualiza nombre o monto de un costo fijo.
func (uc *FixedCostUseCase) Update(id string, in dto.UpdateFixedCostRequest) (*dto.FixedCostResponse, error) {
	cost, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cost == nil {
		return nil, nil
	}
	if in.Name != nil {
		cost.Name = *in.Name
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.NewValidationError("amount", "no puede ser negativo")
		}
		cost.Amount = in.Amount.Round(2)
	}
	cost.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(cost); err != nil {
		return nil, err
	}
	return toFixedCostResponse(cost), nil
}

// Deactivate da de baja lógica un costo fijo (se conserva el histórico).
func (uc *FixedCostUseCase) Deactivate(id string) error {
	cost, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cost == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func toFixedCostResponse(c *entity.FixedCost) *dto.FixedCostResponse {
	return &dto.FixedCostResponse{
		ID:        c.ID,
		Name:      c.Name,
		Amount:    c.Amount,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
