package repository

import (
	"fmt"
	"strings"
)

// Searchable columns per entity. Joined columns are reached through the
// aliases used by each repository's listing query.
var (
	userSearchColumns        = []string{"nombre", "apellido", "email", "telefono"}
	patientSearchColumns     = []string{"p.nombre", "p.especie", "p.raza", "u.nombre", "u.apellido"}
	serviceSearchColumns     = []string{"nombre", "descripcion"}
	appointmentSearchColumns = []string{"u.nombre", "u.apellido", "p.nombre", "s.nombre", "c.estado"}
	paymentSearchColumns     = []string{"u.nombre", "p.nombre", "s.nombre", "pa.estado", "pa.metodo_pago"}
)

// searchClause translates a free-text term into OR-joined partial-match
// conditions over the given columns, all bound to a single placeholder. An
// empty term yields the %% pattern, which matches every row. Case sensitivity
// is left to the store's collation.
func searchClause(columns []string, term string, argIndex int) (string, string) {
	conditions := make([]string, len(columns))
	for i, col := range columns {
		conditions[i] = fmt.Sprintf("%s LIKE $%d", col, argIndex)
	}
	pattern := "%" + strings.TrimSpace(term) + "%"
	return "(" + strings.Join(conditions, " OR ") + ")", pattern
}
