package inventorycheck

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avillareal/farmastock-api/internal/application/dto"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// InspectionUseCase casos de uso de la hoja de conteo: registro de cantidades
// contadas (con clasificación en servidor), máquina de estados de la
// inspección y hoja de conteo imprimible.
type InspectionUseCase struct {
	inspectionRepo repository.InspectionRepository
	packageRepo    repository.PackageRepository
	locationRepo   repository.LocationRepository
	batchRepo      repository.BatchRepository
	sheetGen       CountSheetGenerator
}

// NewInspectionUseCase construye el caso de uso.
func NewInspectionUseCase(
	inspectionRepo repository.InspectionRepository,
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	batchRepo repository.BatchRepository,
	sheetGen CountSheetGenerator,
) *InspectionUseCase {
	return &InspectionUseCase{
		inspectionRepo: inspectionRepo,
		packageRepo:    packageRepo,
		locationRepo:   locationRepo,
		batchRepo:      batchRepo,
		sheetGen:       sheetGen,
	}
}

// GetByID obtiene una inspección con su check list.
func (uc *InspectionUseCase) GetByID(id string) (*dto.InspectionResponse, error) {
	insp, err := uc.inspectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, nil
	}
	return toInspectionResponse(insp), nil
}

// SubmitCounts registra las cantidades contadas de una inspección. La
// clasificación (valid/over_expected/under_expected) se deriva en servidor
// comparando contra la cantidad esperada. Un paquete sin ítem previo en esta
// inspección (hallado donde no se esperaba) entra con esperado = 0, lo que lo
// clasifica over_expected si su conteo es positivo.
func (uc *InspectionUseCase) SubmitCounts(checkerID, inspectionID string, in dto.SubmitCountsRequest) (*dto.InspectionResponse, error) {
	insp, err := uc.inspectionRepo.GetByID(inspectionID)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}
	if insp.Status == entity.InspectionStatusChecked {
		return nil, domain.ErrConflict
	}

	expectedByPackage := make(map[string]entity.CheckItem, len(insp.CheckList))
	for _, item := range insp.CheckList {
		expectedByPackage[item.PackageID] = item
	}

	for _, count := range in.Items {
		if count.PackageID == "" || count.ActualQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item, exists := expectedByPackage[count.PackageID]
		if !exists {
			// Paquete hallado físicamente en esta ubicación sin estar esperado:
			// debe existir en el sistema (se esperaba en otra parte).
			pkg, err := uc.packageRepo.GetByID(count.PackageID)
			if err != nil {
				return nil, err
			}
			if pkg == nil {
				return nil, domain.ErrNotFound
			}
			item = entity.CheckItem{
				ID:               uuid.New().String(),
				InspectionID:     insp.ID,
				PackageID:        count.PackageID,
				ExpectedQuantity: decimal.Zero,
			}
		}
		item.ActualQuantity = count.ActualQuantity
		item.Classification = entity.ClassifyCount(item.ExpectedQuantity, count.ActualQuantity)
		if err := uc.inspectionRepo.UpsertItem(&item); err != nil {
			return nil, err
		}
	}

	if insp.Status == entity.InspectionStatusDraft {
		if err := uc.inspectionRepo.UpdateStatus(insp.ID, entity.InspectionStatusChecking, checkerID); err != nil {
			return nil, err
		}
	}

	insp, err = uc.inspectionRepo.GetByID(inspectionID)
	if err != nil {
		return nil, err
	}
	return toInspectionResponse(insp), nil
}

// UpdateStatus avanza la máquina de estados draft -> checking -> checked.
// checked es terminal; cualquier retroceso se rechaza.
func (uc *InspectionUseCase) UpdateStatus(checkerID, inspectionID, target string) (*dto.InspectionResponse, error) {
	insp, err := uc.inspectionRepo.GetByID(inspectionID)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}

	valid := false
	switch target {
	case entity.InspectionStatusChecking:
		valid = insp.Status == entity.InspectionStatusDraft
	case entity.InspectionStatusChecked:
		valid = insp.Status == entity.InspectionStatusChecking
	}
	if !valid {
		if insp.Status == target {
			return toInspectionResponse(insp), nil
		}
		return nil, domain.ErrConflict
	}

	if err := uc.inspectionRepo.UpdateStatus(insp.ID, target, checkerID); err != nil {
		return nil, err
	}
	insp.Status = target
	insp.CheckerID = checkerID
	insp.UpdatedAt = time.Now()
	return toInspectionResponse(insp), nil
}

// CountSheetPDF genera la hoja de conteo imprimible de una inspección, con el
// lote y la cantidad esperada de cada paquete de la ubicación.
func (uc *InspectionUseCase) CountSheetPDF(ctx context.Context, inspectionID string) ([]byte, error) {
	insp, err := uc.inspectionRepo.GetByID(inspectionID)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}

	locationCode := insp.LocationID
	if location, err := uc.locationRepo.GetByID(insp.LocationID); err == nil && location != nil {
		locationCode = location.Code
	}

	sheet := &CountSheetData{
		OrderID:      insp.OrderID,
		LocationCode: locationCode,
		Status:       insp.Status,
	}
	for _, item := range insp.CheckList {
		row := CountSheetRow{
			PackageID: item.PackageID,
			Expected:  item.ExpectedQuantity.String(),
			Actual:    item.ActualQuantity.String(),
		}
		if pkg, err := uc.packageRepo.GetByID(item.PackageID); err == nil && pkg != nil {
			if batch, err := uc.batchRepo.GetByID(pkg.BatchID); err == nil && batch != nil {
				row.MedicineName = batch.MedicineName
				row.BatchCode = batch.BatchCode
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return uc.sheetGen.GenerateCountSheet(ctx, sheet)
}
