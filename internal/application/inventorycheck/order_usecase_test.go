package inventorycheck_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

func TestCreateOrder_SiembraUnaInspeccionPorUbicacionOcupada(t *testing.T) {
	store := newFakeStore()
	seedLocation(store, "L1", false)
	seedLocation(store, "L2", false)
	seedLocation(store, "L3", true) // vacía: no debe generar inspección
	seedPackage(store, "P1", "B1", "L1", 100)
	seedPackage(store, "P2", "B2", "L1", 40)
	seedPackage(store, "P3", "B3", "L2", 7)

	uc := newOrderUseCase(store, "")
	resp, err := uc.CreateOrder(context.Background(), "supervisor-1", dto.CreateCheckOrderRequest{
		ManagerID: "bodeguero-1",
		CheckDate: time.Now().AddDate(0, 0, 1),
		Notes:     "conteo trimestral",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, "bodeguero-1", resp.ManagerID)
	assert.Equal(t, "supervisor-1", resp.CreatedBy)

	require.Len(t, store.inspections, 2, "una inspección por ubicación con paquetes")

	byLocation := make(map[string]*entity.Inspection)
	for _, insp := range store.inspections {
		assert.Equal(t, resp.ID, insp.OrderID)
		assert.Equal(t, entity.InspectionStatusDraft, insp.Status)
		byLocation[insp.LocationID] = insp
	}

	require.Contains(t, byLocation, "L1")
	require.Contains(t, byLocation, "L2")
	assert.NotContains(t, byLocation, "L3", "una ubicación vacía no tiene nada que contar")

	require.Len(t, byLocation["L1"].CheckList, 2)
	require.Len(t, byLocation["L2"].CheckList, 1)

	itemL2 := byLocation["L2"].CheckList[0]
	assert.Equal(t, "P3", itemL2.PackageID)
	assert.True(t, itemL2.ExpectedQuantity.Equal(d(7)), "lo esperado es la cantidad registrada del paquete")
	assert.True(t, itemL2.ActualQuantity.IsZero(), "lo contado arranca en cero")
	assert.Empty(t, itemL2.Classification, "sin conteo físico no hay clasificación")
}

func TestCreateOrder_SinResponsable(t *testing.T) {
	uc := newOrderUseCase(newFakeStore(), "")
	_, err := uc.CreateOrder(context.Background(), "supervisor-1", dto.CreateCheckOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_DetalleConInspecciones(t *testing.T) {
	store := newFakeStore()
	seedOrder(store, "O1", entity.OrderStatusProcessing)
	seedInspection(store, "I1", "O1", "L1", entity.InspectionStatusChecking, item("P1", 10, 8))
	seedInspection(store, "I2", "otra-orden", "L1", entity.InspectionStatusDraft)

	uc := newOrderUseCase(store, "")
	detail, err := uc.GetByID("O1")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "O1", detail.Order.ID)
	require.Len(t, detail.Inspections, 1, "solo inspecciones de esta orden")
	assert.Equal(t, "I1", detail.Inspections[0].ID)
	require.Len(t, detail.Inspections[0].CheckList, 1)
	assert.Equal(t, entity.CheckUnderExpected, detail.Inspections[0].CheckList[0].Classification)
}

func TestGetByID_OrdenInexistente(t *testing.T) {
	uc := newOrderUseCase(newFakeStore(), "")
	detail, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestList_FiltraPorEstado(t *testing.T) {
	store := newFakeStore()
	seedOrder(store, "O1", entity.OrderStatusPending)
	seedOrder(store, "O2", entity.OrderStatusCompleted)
	seedOrder(store, "O3", entity.OrderStatusPending)

	uc := newOrderUseCase(store, "")

	all, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)

	pending, err := uc.List(entity.OrderStatusPending, 20, 0)
	require.NoError(t, err)
	require.Len(t, pending.Items, 2)
	for _, o := range pending.Items {
		assert.Equal(t, entity.OrderStatusPending, o.Status)
	}
}
