package inventorycheck_test

import (
	"context"
	"errors"
	"sort"

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
	"github.com/avillareal/farmastock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore simula la base de datos; fakeTxRunner implementa la semántica
// transaccional real: ejecuta el callback sobre una copia profunda del store y
// solo la publica si el callback termina sin error. Un error descarta la copia
// completa, igual que un Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	orders          map[string]*entity.InventoryCheckOrder
	inspections     map[string]*entity.Inspection
	inspectionOrder []string // orden de inserción, para listados deterministas
	packages        map[string]*entity.Package
	locations       map[string]*entity.Location
	logs            []*entity.LogLocationChange
	batches         map[string]*entity.MedicineBatch
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:      make(map[string]*entity.InventoryCheckOrder),
		inspections: make(map[string]*entity.Inspection),
		packages:    make(map[string]*entity.Package),
		locations:   make(map[string]*entity.Location),
		batches:     make(map[string]*entity.MedicineBatch),
	}
}

func copyInspection(i *entity.Inspection) *entity.Inspection {
	c := *i
	c.CheckList = append([]entity.CheckItem(nil), i.CheckList...)
	return &c
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, o := range s.orders {
		cp := *o
		c.orders[id] = &cp
	}
	for id, i := range s.inspections {
		c.inspections[id] = copyInspection(i)
	}
	c.inspectionOrder = append([]string(nil), s.inspectionOrder...)
	for id, p := range s.packages {
		cp := *p
		c.packages[id] = &cp
	}
	for id, l := range s.locations {
		cp := *l
		c.locations[id] = &cp
	}
	for _, l := range s.logs {
		cp := *l
		c.logs = append(c.logs, &cp)
	}
	for id, b := range s.batches {
		cp := *b
		c.batches[id] = &cp
	}
	return c
}

// ── Repos atados a un store ──────────────────────────────────────────────────

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.InventoryCheckOrder) error {
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.InventoryCheckOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.InventoryCheckOrder, error) {
	var list []*entity.InventoryCheckOrder
	for _, o := range r.s.orders {
		if status == "" || o.Status == status {
			cp := *o
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeInspectionRepo struct{ s *fakeStore }

func (r *fakeInspectionRepo) Create(i *entity.Inspection) error {
	if _, exists := r.s.inspections[i.ID]; exists {
		return domain.ErrDuplicate
	}
	r.s.inspections[i.ID] = copyInspection(i)
	r.s.inspectionOrder = append(r.s.inspectionOrder, i.ID)
	return nil
}

func (r *fakeInspectionRepo) GetByID(id string) (*entity.Inspection, error) {
	i, ok := r.s.inspections[id]
	if !ok {
		return nil, nil
	}
	return copyInspection(i), nil
}

func (r *fakeInspectionRepo) ListByOrder(orderID string) ([]*entity.Inspection, error) {
	var list []*entity.Inspection
	for _, id := range r.s.inspectionOrder {
		if i := r.s.inspections[id]; i != nil && i.OrderID == orderID {
			list = append(list, copyInspection(i))
		}
	}
	return list, nil
}

func (r *fakeInspectionRepo) UpdateStatus(id, status, checkerID string) error {
	i, ok := r.s.inspections[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Status = status
	i.CheckerID = checkerID
	return nil
}

func (r *fakeInspectionRepo) UpsertItem(item *entity.CheckItem) error {
	i, ok := r.s.inspections[item.InspectionID]
	if !ok {
		return domain.ErrNotFound
	}
	for idx := range i.CheckList {
		if i.CheckList[idx].PackageID == item.PackageID {
			i.CheckList[idx] = *item
			return nil
		}
	}
	i.CheckList = append(i.CheckList, *item)
	return nil
}

// fakePackageRepo permite inyectar un fallo de Update sobre un paquete
// concreto para verificar la atomicidad de la reconciliación.
type fakePackageRepo struct {
	s            *fakeStore
	failUpdateID string
}

var errInjectedWrite = errors.New("fallo de escritura inyectado")

func (r *fakePackageRepo) GetByID(id string) (*entity.Package, error) {
	p, ok := r.s.packages[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) GetForUpdate(id string) (*entity.Package, error) {
	return r.GetByID(id)
}

func (r *fakePackageRepo) ListAll() ([]*entity.Package, error) {
	var list []*entity.Package
	for _, p := range r.s.packages {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakePackageRepo) ListByLocation(locationID string) ([]*entity.Package, error) {
	all, _ := r.ListAll()
	var list []*entity.Package
	for _, p := range all {
		if p.LocationID == locationID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakePackageRepo) CountByLocation(locationID string) (int, error) {
	n := 0
	for _, p := range r.s.packages {
		if p.LocationID == locationID {
			n++
		}
	}
	return n, nil
}

func (r *fakePackageRepo) Update(pkg *entity.Package) error {
	if pkg.ID == r.failUpdateID {
		return errInjectedWrite
	}
	cp := *pkg
	r.s.packages[pkg.ID] = &cp
	return nil
}

func (r *fakePackageRepo) Delete(id string) error {
	delete(r.s.packages, id)
	return nil
}

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) SetAvailable(id string, available bool) error {
	l, ok := r.s.locations[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Available = available
	return nil
}

type fakeLogRepo struct{ s *fakeStore }

func (r *fakeLogRepo) Create(log *entity.LogLocationChange) error {
	cp := *log
	r.s.logs = append(r.s.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.LogLocationChange, error) {
	var list []*entity.LogLocationChange
	for _, l := range r.s.logs {
		if l.LocationID == locationID {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeBatchRepo struct{ s *fakeStore }

func (r *fakeBatchRepo) GetByID(id string) (*entity.MedicineBatch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// ── TxRunner con semántica commit/rollback ───────────────────────────────────

type fakeTxRunner struct {
	s *fakeStore
	// failUpdatePackageID se propaga al fakePackageRepo de la tx.
	failUpdatePackageID string
}

var _ inventorycheck.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	inspectionRepo repository.InspectionRepository,
	packageRepo repository.PackageRepository,
	locationRepo repository.LocationRepository,
	logRepo repository.LocationLogRepository,
) error) error {
	work := r.s.clone()
	err := fn(
		&fakeOrderRepo{s: work},
		&fakeInspectionRepo{s: work},
		&fakePackageRepo{s: work, failUpdateID: r.failUpdatePackageID},
		&fakeLocationRepo{s: work},
		&fakeLogRepo{s: work},
	)
	if err != nil {
		return err // rollback: se descarta la copia
	}
	*r.s = *work // commit: se publica la copia
	return nil
}
