package inventorycheck

import (
	"github.com/avillareal/farmastock-api/internal/domain"
	"github.com/avillareal/farmastock-api/internal/domain/entity"
)

// Decision es el resultado autoritativo para un paquete: el ítem de conteo
// ganador y la ubicación de la inspección que lo produjo.
type Decision struct {
	Item       entity.CheckItem
	LocationID string
}

// DecisionSet mapa paquete -> decisión, conservando el orden de inserción
// (primer encuentro al recorrer las inspecciones) para que la aplicación
// sea determinista ante el mismo input.
type DecisionSet struct {
	byPackage map[string]Decision
	order     []string
}

// Get devuelve la decisión de un paquete.
func (s *DecisionSet) Get(packageID string) (Decision, bool) {
	d, ok := s.byPackage[packageID]
	return d, ok
}

// PackageIDs devuelve los IDs de paquete en orden de inserción.
func (s *DecisionSet) PackageIDs() []string {
	return s.order
}

// Len cantidad de paquetes con decisión.
func (s *DecisionSet) Len() int { return len(s.byPackage) }

func (s *DecisionSet) put(packageID string, d Decision) {
	if _, exists := s.byPackage[packageID]; !exists {
		s.order = append(s.order, packageID)
	}
	s.byPackage[packageID] = d
}

// classificationRank define el orden total de precedencia entre clasificaciones:
// over_expected > valid > under_expected. Un hallazgo físico con sobrante es
// autoritativo sobre cualquier otro; un conteo exacto gana sobre un faltante.
func classificationRank(classification string) int {
	switch classification {
	case entity.CheckOverExpected:
		return 2
	case entity.CheckValid:
		return 1
	case entity.CheckUnderExpected:
		return 0
	default:
		return -1
	}
}

// wins indica si la clasificación candidata reemplaza a la vigente.
// Solo gana con rango estrictamente mayor: ante empate se conserva la primera
// vista, lo que mantiene el resultado independiente del orden de iteración.
func wins(candidate, current string) bool {
	return classificationRank(candidate) > classificationRank(current)
}

// BuildDecisions recorre todas las inspecciones de una orden y produce una
// decisión por paquete distinto aplicando la regla de precedencia. Es un fold
// puro sobre datos en memoria: no tiene efectos secundarios.
//
// Retorna domain.ErrNoInspections si la orden no tiene inspecciones.
func BuildDecisions(inspections []*entity.Inspection) (*DecisionSet, error) {
	if len(inspections) == 0 {
		return nil, domain.ErrNoInspections
	}
	set := &DecisionSet{byPackage: make(map[string]Decision)}
	for _, insp := range inspections {
		for _, item := range insp.CheckList {
			if item.Classification == "" {
				// Ítem nunca contado: no aporta decisión.
				continue
			}
			current, exists := set.byPackage[item.PackageID]
			if !exists || wins(item.Classification, current.Item.Classification) {
				set.put(item.PackageID, Decision{Item: item, LocationID: insp.LocationID})
			}
		}
	}
	return set, nil
}
