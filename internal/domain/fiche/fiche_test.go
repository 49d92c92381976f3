package fiche_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/fiche"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestResume_VecteurExact vérifie que le rendu texte de la fiche est exactement
// celui attendu pour un historique connu. C'est le canari du format : toute
// modification involontaire du gabarit (dates, icônes, signes, ordre) fait
// échouer ce test immédiatement.
// ──────────────────────────────────────────────────────────────────────────────

func stockDeTest() *entity.Stock {
	return &entity.Stock{
		ID:               1,
		Designation:      "Jumelles IL",
		Quantite:         70,
		Etat:             "neuf",
		ValeurCritique:   10,
		Statut:           entity.StatutVert,
		DateCreation:     time.Date(2024, 3, 12, 8, 30, 0, 0, time.UTC),
		QuantiteInitiale: 100,
	}
}

func mouvementsDeTest() []*entity.StockMovement {
	// Du plus récent au plus ancien, comme servi par le repository.
	return []*entity.StockMovement{
		{
			ID: 2, StockID: 1, Type: entity.MovementRetrait, Quantite: 50,
			Description:  "perception unité",
			DateMovement: time.Date(2024, 3, 17, 14, 5, 0, 0, time.UTC),
			Utilisateur:  "CCH-4821", QuantiteAvant: 120, QuantiteApres: 70,
		},
		{
			ID: 1, StockID: 1, Type: entity.MovementApprovisionnement, Quantite: 20,
			Description:  "réassort annuel",
			DateMovement: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			Utilisateur:  "ADJ-1027", QuantiteAvant: 100, QuantiteApres: 120,
		},
	}
}

const resumeAttendu = `FICHE MATÉRIEL — Jumelles IL
Créée le          : 12/03/2024 08:30
Quantité initiale : 100
État              : neuf
Valeur critique   : 10
Statut            : VERT (Normal)
----------------------------------------
Mouvements          : 2
Total approvisionné : +20
Total retiré        : -50
Quantité calculée   : 70
Quantité en stock   : 70
----------------------------------------
17/03/2024 14:05  ↓ RETRAIT  -50  120 → 70  perception unité (CCH-4821)
15/03/2024 09:00  ↑ APPROVISIONNEMENT  +20  100 → 120  réassort annuel (ADJ-1027)
`

func TestResume_VecteurExact(t *testing.T) {
	f := fiche.Build(stockDeTest(), mouvementsDeTest())

	require.Equal(t, 20, f.TotalApprovisionne)
	require.Equal(t, 50, f.TotalRetire)
	require.Equal(t, 70, f.QuantiteCalculee)
	require.False(t, f.Ecart())

	assert.Equal(t, resumeAttendu, f.Resume())
}

func TestResume_SignaleEcart(t *testing.T) {
	stock := stockDeTest()
	stock.Quantite = 75 // le magasin annonce 75 alors que le rejeu donne 70
	f := fiche.Build(stock, mouvementsDeTest())

	require.True(t, f.Ecart())
	assert.Contains(t, f.Resume(), "/!\\ ÉCART : quantité calculée 70 ≠ quantité en stock 75")
}

func TestBuild_SansMouvements(t *testing.T) {
	stock := stockDeTest()
	stock.Quantite = 100
	f := fiche.Build(stock, nil)

	assert.Equal(t, 0, f.TotalApprovisionne)
	assert.Equal(t, 0, f.TotalRetire)
	assert.Equal(t, 100, f.QuantiteCalculee)
	assert.False(t, f.Ecart())
}

// Anciennes lignes sans métadonnées de création : date du jour et initiale à 0.
func TestBuild_DefautsMetadonnees(t *testing.T) {
	stock := &entity.Stock{ID: 9, Designation: "Lot ancien", Quantite: 0}
	f := fiche.Build(stock, nil)

	assert.False(t, f.DateCreation.IsZero())
	assert.Equal(t, 0, f.QuantiteInitiale)
	assert.Equal(t, 0, f.QuantiteCalculee)
}

func TestResume_StatutInconnu(t *testing.T) {
	stock := stockDeTest()
	stock.Statut = "BLEU"
	f := fiche.Build(stock, nil)

	assert.Contains(t, f.Resume(), "BLEU (Inconnu)")
}
