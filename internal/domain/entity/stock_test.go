package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
)

func TestDeriveStatut(t *testing.T) {
	cases := []struct {
		nom            string
		quantite       int
		valeurCritique int
		attendu        string
	}{
		{"épuisé", 0, 10, entity.StatutViolet},
		{"sous le seuil", 8, 10, entity.StatutRouge},
		{"au seuil", 10, 10, entity.StatutRouge},
		{"zone d'attention", 15, 10, entity.StatutOrange},
		{"double du seuil", 20, 10, entity.StatutOrange},
		{"confortable", 21, 10, entity.StatutVert},
		{"seuil nul, stock présent", 5, 0, entity.StatutVert},
	}
	for _, c := range cases {
		t.Run(c.nom, func(t *testing.T) {
			assert.Equal(t, c.attendu, entity.DeriveStatut(c.quantite, c.valeurCritique))
		})
	}
}

func TestLibelleStatut(t *testing.T) {
	assert.Equal(t, "Normal", entity.LibelleStatut(entity.StatutVert))
	assert.Equal(t, "Attention", entity.LibelleStatut(entity.StatutOrange))
	assert.Equal(t, "Faible", entity.LibelleStatut(entity.StatutRouge))
	assert.Equal(t, "Critique", entity.LibelleStatut(entity.StatutViolet))
	assert.Equal(t, "Inconnu", entity.LibelleStatut("ROSE"))
	assert.Equal(t, "Inconnu", entity.LibelleStatut(""))
}

func TestStockMovement_Signe(t *testing.T) {
	entree := &entity.StockMovement{Type: entity.MovementApprovisionnement, Quantite: 12}
	sortie := &entity.StockMovement{Type: entity.MovementRetrait, Quantite: 12}
	assert.Equal(t, 12, entree.Signe())
	assert.Equal(t, -12, sortie.Signe())
}
