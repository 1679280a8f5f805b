package service

import (
	"context"

	"github.com/Yorfad/PROVIAL-sub003/internal/domain"
	"github.com/Yorfad/PROVIAL-sub003/internal/storage/postgres"
)

type CatalogoCore struct {
	catalogo postgres.CatalogoRepository
}

func NewCatalogoService(catalogo postgres.CatalogoRepository) *CatalogoCore {
	return &CatalogoCore{catalogo: catalogo}
}

func (s *CatalogoCore) TiposEmergencia(ctx context.Context) ([]*domain.TipoEmergencia, error) {
	return s.catalogo.TiposEmergencia(ctx)
}
