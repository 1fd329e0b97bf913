package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/patrimonio-api/internal/domain"
)

// validID indica si id es un UUID en forma canónica; todas las claves de la base lo son.
// Un id de ruta mal formado se trata como inexistente sin consultar la base.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// checkFilterIDs rechaza filtros de listado con ids mal formados (vacío = sin filtro).
func checkFilterIDs(ids ...string) error {
	for _, id := range ids {
		if id != "" && !validID(id) {
			return fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
		}
	}
	return nil
}
