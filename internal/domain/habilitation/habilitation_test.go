package habilitation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yacinebrahmi/gestock-api/internal/domain/habilitation"
)

func TestPeutAcceder(t *testing.T) {
	r := habilitation.NewRegistre()

	assert.True(t, r.PeutAcceder(habilitation.ServiceLogistique, "stocks"))
	assert.True(t, r.PeutAcceder(habilitation.ServiceLogistique, "stock_movements"))
	assert.True(t, r.PeutAcceder(habilitation.ServiceOperations, "stocks"))
	assert.True(t, r.PeutAcceder(habilitation.ServiceRH, "personnel"))

	assert.False(t, r.PeutAcceder(habilitation.ServiceRH, "stocks"))
	assert.False(t, r.PeutAcceder(habilitation.ServiceOperations, "personnel"))
	assert.False(t, r.PeutAcceder("INCONNU", "stocks"))
	assert.False(t, r.PeutAcceder(habilitation.ServiceLogistique, "table_inexistante"))
}

func TestTablesAccessibles_RetourneUneCopie(t *testing.T) {
	r := habilitation.NewRegistre()

	tables := r.TablesAccessibles(habilitation.ServiceLogistique)
	assert.NotEmpty(t, tables)

	tables[0] = "corrompue"
	assert.NotContains(t, r.TablesAccessibles(habilitation.ServiceLogistique), "corrompue",
		"le registre ne doit pas être modifiable de l'extérieur")
}

func TestClePrimaire(t *testing.T) {
	r := habilitation.NewRegistre()

	assert.Equal(t, "matricule", r.ClePrimaire("personnel"))
	assert.Equal(t, "id", r.ClePrimaire("stocks"))
	assert.Equal(t, "", r.ClePrimaire("table_inexistante"))
}

// Le regroupement par matricule concerne les tables connues qui ne sont pas
// elles-mêmes indexées par matricule.
func TestRegroupeParMatricule(t *testing.T) {
	r := habilitation.NewRegistre()

	assert.False(t, r.RegroupeParMatricule("personnel"), "déjà indexée par matricule")
	assert.True(t, r.RegroupeParMatricule("conges"))
	assert.True(t, r.RegroupeParMatricule("sanctions"))
	assert.True(t, r.RegroupeParMatricule("stocks"))
	assert.False(t, r.RegroupeParMatricule("table_inexistante"), "table inconnue : pas de regroupement")
}
