// Package habilitation porte les tables d'accès par service : quel service peut
// consulter quelles tables, et quelle est la clé primaire de chaque table.
// Le registre est construit une fois au démarrage puis injecté ; il n'expose
// aucun état global mutable.
package habilitation

// Services de l'organisation.
const (
	ServiceOperations = "OPERATIONS"
	ServiceLogistique = "LOGISTIQUE"
	ServiceRH         = "RH"
)

// Registre associe chaque service à ses tables accessibles et chaque table à sa
// clé primaire. Immuable après construction.
type Registre struct {
	tablesParService map[string][]string
	clePrimaire      map[string]string
}

// NewRegistre construit le registre des habilitations avec la cartographie de
// l'organisation.
func NewRegistre() *Registre {
	return &Registre{
		tablesParService: map[string][]string{
			ServiceOperations: {"missions", "operations", "stocks"},
			ServiceLogistique: {"stocks", "stock_movements", "vehicules"},
			ServiceRH:         {"personnel", "conges", "sanctions"},
		},
		clePrimaire: map[string]string{
			"missions":        "id",
			"operations":      "id",
			"stocks":          "id",
			"stock_movements": "id",
			"vehicules":       "id",
			"personnel":       "matricule",
			"conges":          "id",
			"sanctions":       "id",
		},
	}
}

// TablesAccessibles retourne une copie de la liste des tables visibles par un service.
func (r *Registre) TablesAccessibles(service string) []string {
	tables := r.tablesParService[service]
	out := make([]string, len(tables))
	copy(out, tables)
	return out
}

// PeutAcceder indique si un service a le droit de consulter une table.
func (r *Registre) PeutAcceder(service, table string) bool {
	for _, t := range r.tablesParService[service] {
		if t == table {
			return true
		}
	}
	return false
}

// ClePrimaire retourne la clé primaire d'une table (chaîne vide si inconnue).
func (r *Registre) ClePrimaire(table string) string {
	return r.clePrimaire[table]
}

// RegroupeParMatricule indique si les lignes d'une table doivent être regroupées
// par matricule lors de l'affichage : vrai pour toute table connue qui suit le
// personnel sans être elle-même indexée par matricule.
func (r *Registre) RegroupeParMatricule(table string) bool {
	pk, ok := r.clePrimaire[table]
	if !ok {
		return false
	}
	return pk != "matricule"
}
