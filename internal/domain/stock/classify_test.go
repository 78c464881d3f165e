package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/stock"
)

func TestClassify_PorKind(t *testing.T) {
	cases := []struct {
		name        string
		kind        string
		displayType string
		stockEffect int64
		bucket      string
		costCenter  bool
	}{
		{"entrada de proveedor", entity.KindSupplierEntry, stock.DisplayEntry, 1, stock.BucketEntries, false},
		{"devolución de funcionario", entity.KindEmployeeReturn, stock.DisplayReturn, 1, stock.BucketReturns, true},
		{"devolución de tercero", entity.KindThirdPartyReturn, stock.DisplayReturn, 1, stock.BucketReturns, true},
		{"salida", entity.KindExit, stock.DisplayExit, -1, stock.BucketExits, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := stock.Classify(&entity.Movement{Kind: tc.kind})
			assert.Equal(t, tc.displayType, c.DisplayType)
			assert.Equal(t, tc.stockEffect, c.StockEffect)
			assert.Equal(t, tc.bucket, c.Bucket)
			assert.Equal(t, tc.costCenter, c.CostCenterRelevant,
				"solo las compras a proveedor quedan fuera de centros de costo")
		})
	}
}

func TestClassify_SignoCoincideConStockEffect(t *testing.T) {
	// El signo del reporte y el del recálculo de stock deben salir de la
	// misma fuente (el kind); si divergen el reporte miente.
	for _, kind := range []string{
		entity.KindSupplierEntry, entity.KindEmployeeReturn,
		entity.KindThirdPartyReturn, entity.KindExit,
	} {
		m := &entity.Movement{Kind: kind}
		assert.Equal(t, m.StockEffect(), stock.Classify(m).StockEffect, kind)
	}
}
