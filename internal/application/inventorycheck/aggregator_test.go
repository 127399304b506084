package inventorycheck_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func inspectionAt(locationID string, items ...entity.CheckItem) *entity.Inspection {
	return &entity.Inspection{
		ID:         "insp-" + locationID,
		OrderID:    "order-1",
		LocationID: locationID,
		Status:     entity.InspectionStatusChecked,
		CheckList:  items,
	}
}

func item(packageID string, expected, actual int64) entity.CheckItem {
	return entity.CheckItem{
		PackageID:        packageID,
		ExpectedQuantity: d(expected),
		ActualQuantity:   d(actual),
		Classification:   entity.ClassifyCount(d(expected), d(actual)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildDecisions: precedencia over_expected > valid > under_expected
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildDecisions_OverExpectedGanaSobreUnderExpected(t *testing.T) {
	// El paquete P se esperaba en L1 (faltante) pero fue hallado en L2.
	underEnL1 := inspectionAt("L1", item("P", 100, 0))
	overEnL2 := inspectionAt("L2", item("P", 0, 100))

	for name, inspections := range map[string][]*entity.Inspection{
		"under primero": {underEnL1, overEnL2},
		"over primero":  {overEnL2, underEnL1},
	} {
		t.Run(name, func(t *testing.T) {
			set, err := inventorycheck.BuildDecisions(inspections)
			require.NoError(t, err)
			require.Equal(t, 1, set.Len(), "un paquete distinto debe producir una sola decisión")

			decision, ok := set.Get("P")
			require.True(t, ok)
			assert.Equal(t, entity.CheckOverExpected, decision.Item.Classification,
				"el hallazgo físico debe ganar independientemente del orden de iteración")
			assert.Equal(t, "L2", decision.LocationID)
			assert.True(t, decision.Item.ActualQuantity.Equal(d(100)))
		})
	}
}

func TestBuildDecisions_ValidGanaSobreUnderExpected(t *testing.T) {
	set, err := inventorycheck.BuildDecisions([]*entity.Inspection{
		inspectionAt("L1", item("P", 50, 0)),
		inspectionAt("L2", item("P", 50, 50)),
	})
	require.NoError(t, err)

	decision, ok := set.Get("P")
	require.True(t, ok)
	assert.Equal(t, entity.CheckValid, decision.Item.Classification)
	assert.Equal(t, "L2", decision.LocationID)
}

func TestBuildDecisions_EmpateConservaLaPrimeraVista(t *testing.T) {
	// Dos conteos con la misma clasificación: gana el primero recorrido,
	// para que el resultado sea estable ante el mismo input.
	set, err := inventorycheck.BuildDecisions([]*entity.Inspection{
		inspectionAt("L1", item("P", 10, 7)),
		inspectionAt("L2", item("P", 10, 4)),
	})
	require.NoError(t, err)

	decision, _ := set.Get("P")
	assert.Equal(t, "L1", decision.LocationID)
	assert.True(t, decision.Item.ActualQuantity.Equal(d(7)))
}

func TestBuildDecisions_ItemSinContarNoAportaDecision(t *testing.T) {
	sinContar := entity.CheckItem{PackageID: "P", ExpectedQuantity: d(30), ActualQuantity: decimal.Zero}

	set, err := inventorycheck.BuildDecisions([]*entity.Inspection{
		inspectionAt("L1", sinContar),
		inspectionAt("L2", item("Q", 5, 5)),
	})
	require.NoError(t, err)

	_, ok := set.Get("P")
	assert.False(t, ok, "un ítem con clasificación vacía no debe generar decisión")
	assert.Equal(t, []string{"Q"}, set.PackageIDs())
}

func TestBuildDecisions_SinInspecciones(t *testing.T) {
	set, err := inventorycheck.BuildDecisions(nil)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, domain.ErrNoInspections)
}

func TestBuildDecisions_OrdenDeInsercionDeterminista(t *testing.T) {
	set, err := inventorycheck.BuildDecisions([]*entity.Inspection{
		inspectionAt("L1", item("B", 1, 1), item("A", 2, 2)),
		inspectionAt("L2", item("C", 3, 3)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, set.PackageIDs(),
		"PackageIDs debe conservar el orden del primer encuentro")
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveAction: decisión -> mutación concreta
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveAction_ConteoCeroElimina(t *testing.T) {
	pkg := &entity.Package{ID: "P", LocationID: "L1", Quantity: d(40)}
	decision := inventorycheck.Decision{
		Item:       item("P", 40, 0),
		LocationID: "L1",
	}

	action := inventorycheck.ResolveAction(pkg, decision)
	remove, ok := action.(inventorycheck.RemovePackage)
	require.True(t, ok, "conteo cero debe resolver a RemovePackage, obtuve %T", action)
	assert.True(t, remove.OriginalQuantity.Equal(d(40)))
	assert.Equal(t, "L1", remove.OriginLocationID)
}

func TestResolveAction_OverExpectedReubica(t *testing.T) {
	pkg := &entity.Package{ID: "P", LocationID: "L1", Quantity: d(100)}
	decision := inventorycheck.Decision{
		Item:       item("P", 0, 100),
		LocationID: "L2",
	}

	action := inventorycheck.ResolveAction(pkg, decision)
	relocate, ok := action.(inventorycheck.RelocatePackage)
	require.True(t, ok, "over_expected con conteo positivo debe resolver a RelocatePackage, obtuve %T", action)
	assert.Equal(t, "L2", relocate.ToLocationID)
	assert.True(t, relocate.Quantity.Equal(d(100)))
}

func TestResolveAction_SobranteEnLaMismaUbicacionAjusta(t *testing.T) {
	// over_expected en la ubicación donde el paquete ya está no es un
	// movimiento: debe resolver a un ajuste con su único delta.
	pkg := &entity.Package{ID: "P", LocationID: "L1", Quantity: d(100)}
	action := inventorycheck.ResolveAction(pkg, inventorycheck.Decision{
		Item:       item("P", 100, 120),
		LocationID: "L1",
	})

	adjust, ok := action.(inventorycheck.AdjustQuantity)
	require.True(t, ok, "sobrante en sitio debe resolver a AdjustQuantity, obtuve %T", action)
	assert.True(t, adjust.Quantity.Equal(d(120)))
	assert.True(t, adjust.Delta.Equal(d(20)))
}

func TestResolveAction_AjusteEnSitio(t *testing.T) {
	pkg := &entity.Package{ID: "P", LocationID: "L1", Quantity: d(100)}

	t.Run("faltante parcial", func(t *testing.T) {
		action := inventorycheck.ResolveAction(pkg, inventorycheck.Decision{
			Item:       item("P", 100, 90),
			LocationID: "L1",
		})
		adjust, ok := action.(inventorycheck.AdjustQuantity)
		require.True(t, ok, "obtuve %T", action)
		assert.True(t, adjust.Quantity.Equal(d(90)))
		assert.True(t, adjust.Delta.Equal(d(-10)))
	})

	t.Run("conteo exacto", func(t *testing.T) {
		action := inventorycheck.ResolveAction(pkg, inventorycheck.Decision{
			Item:       item("P", 100, 100),
			LocationID: "L1",
		})
		adjust, ok := action.(inventorycheck.AdjustQuantity)
		require.True(t, ok, "obtuve %T", action)
		assert.True(t, adjust.Delta.IsZero(), "conteo exacto no debe producir delta")
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyCount
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyCount(t *testing.T) {
	assert.Equal(t, entity.CheckValid, entity.ClassifyCount(d(10), d(10)))
	assert.Equal(t, entity.CheckOverExpected, entity.ClassifyCount(d(10), d(11)))
	assert.Equal(t, entity.CheckUnderExpected, entity.ClassifyCount(d(10), d(9)))
	assert.Equal(t, entity.CheckUnderExpected, entity.ClassifyCount(d(10), decimal.Zero))
	assert.Equal(t, entity.CheckOverExpected, entity.ClassifyCount(decimal.Zero, d(1)),
		"paquete no esperado con conteo positivo es over_expected")
}
