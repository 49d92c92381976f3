// Package fiche reconstruit la fiche matériel d'un stock : le rejeu de l'historique
// des mouvements depuis la quantité initiale, le contrôle de cohérence avec la
// quantité en magasin, et le rendu texte déterministe de la fiche.
//
// La fiche est un instantané de diagnostic, calculé à la demande et jamais persisté.
// Un écart entre quantité calculée et quantité en stock est signalé, pas corrigé.
package fiche

import (
	"fmt"
	"strings"
	"time"

	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
)

// Format d'affichage des dates sur la fiche.
const formatDate = "02/01/2006 15:04"

const separateur = "----------------------------------------"

// FicheMateriel agrège un stock et son historique complet de mouvements
// (du plus récent au plus ancien) avec les totaux recalculés par rejeu.
type FicheMateriel struct {
	Stock            *entity.Stock
	DateCreation     time.Time
	QuantiteInitiale int
	Mouvements       []*entity.StockMovement

	TotalApprovisionne int
	TotalRetire        int
	QuantiteCalculee   int
}

// Build construit la fiche à partir du stock et de ses mouvements (du plus récent au
// plus ancien). Les métadonnées de création absentes (anciennes lignes) sont
// remplacées par des valeurs par défaut : date du jour et quantité initiale 0.
func Build(stock *entity.Stock, mouvements []*entity.StockMovement) *FicheMateriel {
	dateCreation := stock.DateCreation
	if dateCreation.IsZero() {
		dateCreation = time.Now()
	}

	totalAppro := 0
	totalRetire := 0
	for _, m := range mouvements {
		if m.Type == entity.MovementRetrait {
			totalRetire += m.Quantite
		} else {
			totalAppro += m.Quantite
		}
	}

	return &FicheMateriel{
		Stock:              stock,
		DateCreation:       dateCreation,
		QuantiteInitiale:   stock.QuantiteInitiale,
		Mouvements:         mouvements,
		TotalApprovisionne: totalAppro,
		TotalRetire:        totalRetire,
		QuantiteCalculee:   stock.QuantiteInitiale + totalAppro - totalRetire,
	}
}

// Ecart indique si la quantité rejouée diverge de la quantité en magasin.
func (f *FicheMateriel) Ecart() bool {
	return f.QuantiteCalculee != f.Stock.Quantite
}

// Resume rend la fiche en texte lisible : en-tête (désignation, création, statut),
// bloc des totaux avec signalement d'écart éventuel, puis la liste des mouvements
// du plus récent au plus ancien. Le rendu est déterministe pour un même historique.
func (f *FicheMateriel) Resume() string {
	var b strings.Builder

	fmt.Fprintf(&b, "FICHE MATÉRIEL — %s\n", f.Stock.Designation)
	fmt.Fprintf(&b, "Créée le          : %s\n", f.DateCreation.Format(formatDate))
	fmt.Fprintf(&b, "Quantité initiale : %d\n", f.QuantiteInitiale)
	fmt.Fprintf(&b, "État              : %s\n", f.Stock.Etat)
	fmt.Fprintf(&b, "Valeur critique   : %d\n", f.Stock.ValeurCritique)
	fmt.Fprintf(&b, "Statut            : %s (%s)\n", f.Stock.Statut, entity.LibelleStatut(f.Stock.Statut))
	b.WriteString(separateur + "\n")

	fmt.Fprintf(&b, "Mouvements          : %d\n", len(f.Mouvements))
	fmt.Fprintf(&b, "Total approvisionné : +%d\n", f.TotalApprovisionne)
	fmt.Fprintf(&b, "Total retiré        : -%d\n", f.TotalRetire)
	fmt.Fprintf(&b, "Quantité calculée   : %d\n", f.QuantiteCalculee)
	fmt.Fprintf(&b, "Quantité en stock   : %d\n", f.Stock.Quantite)
	if f.Ecart() {
		fmt.Fprintf(&b, "/!\\ ÉCART : quantité calculée %d ≠ quantité en stock %d\n",
			f.QuantiteCalculee, f.Stock.Quantite)
	}
	b.WriteString(separateur + "\n")

	for _, m := range f.Mouvements {
		fmt.Fprintf(&b, "%s  %s %s  %+d  %d → %d  %s (%s)\n",
			m.DateMovement.Format(formatDate),
			icone(m.Type),
			m.Type,
			m.Signe(),
			m.QuantiteAvant,
			m.QuantiteApres,
			m.Description,
			m.Utilisateur,
		)
	}

	return b.String()
}

func icone(typeMovement string) string {
	if typeMovement == entity.MovementRetrait {
		return "↓"
	}
	return "↑"
}
