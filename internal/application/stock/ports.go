package stock

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del libro:
// resolver lotes, validar y escribir filas ocurre dentro de una sola
// transacción con la fila del material bloqueada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movementRepo repository.MovementRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}
