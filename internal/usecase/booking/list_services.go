package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListServices struct {
	repo domain.ServiceStore
}

func NewListServices(repo domain.ServiceStore) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}
