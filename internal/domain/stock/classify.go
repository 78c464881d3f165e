package stock

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Tipos de display para reportes (etiquetas que ve el usuario final).
const (
	DisplayEntry  = "Entrada"
	DisplayExit   = "Saída"
	DisplayReturn = "Devolução"
)

// Buckets de agregación para los totales de reportes. Las devoluciones nunca
// se cuentan como compras: van en su propio bucket.
const (
	BucketEntries = "entries"
	BucketExits   = "exits"
	BucketReturns = "returns"
)

// Classification es la semántica derivada de un movimiento crudo: etiqueta de
// display, signo sobre el stock, bucket de reporte y si aplica a reportes por
// centro de costo (los centros de costo rastrean consumo y devoluciones,
// nunca compras a proveedor).
type Classification struct {
	DisplayType        string
	StockEffect        int64
	Bucket             string
	CostCenterRelevant bool
}

// Classify deriva la clasificación de un movimiento a partir de su kind.
func Classify(m *entity.Movement) Classification {
	switch m.Kind {
	case entity.KindSupplierEntry:
		return Classification{
			DisplayType:        DisplayEntry,
			StockEffect:        1,
			Bucket:             BucketEntries,
			CostCenterRelevant: false,
		}
	case entity.KindEmployeeReturn, entity.KindThirdPartyReturn:
		return Classification{
			DisplayType:        DisplayReturn,
			StockEffect:        1,
			Bucket:             BucketReturns,
			CostCenterRelevant: true,
		}
	default: // entity.KindExit
		return Classification{
			DisplayType:        DisplayExit,
			StockEffect:        -1,
			Bucket:             BucketExits,
			CostCenterRelevant: true,
		}
	}
}
