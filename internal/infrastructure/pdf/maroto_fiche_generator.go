// Package pdf implémente le rendu PDF de la fiche matériel.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : Désignation + statut  │  Date de création        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX : initiale / approvisionné / retiré / calculée      │
//	│           + avertissement d'écart le cas échéant            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : Date | Type | Qté | Avant → Après | Motif | Acteur │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/yacinebrahmi/gestock-api/internal/application/ledger"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/fiche"
)

const formatDate = "02/01/2006 15:04"

var (
	colorPrimary = &props.Color{Red: 31, Green: 61, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ ledger.FichePDFGenerator = (*MarotoFicheGenerator)(nil)

// MarotoFicheGenerator implémente ledger.FichePDFGenerator avec Maroto v2.
type MarotoFicheGenerator struct{}

// NewMarotoFicheGenerator construit le générateur.
func NewMarotoFicheGenerator() *MarotoFicheGenerator { return &MarotoFicheGenerator{} }

// GenerateFichePDF rend la fiche en PDF et retourne ses octets.
func (g *MarotoFicheGenerator) GenerateFichePDF(_ context.Context, f *fiche.FicheMateriel) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fiche matériel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(f)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, mv := range f.Mouvements {
		m.AddRows(movementRow(mv))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow : désignation + statut (gauche), date de création (droite).
func headerRow(f *fiche.FicheMateriel) core.Row {
	statut := fmt.Sprintf("%s (%s)", f.Stock.Statut, entity.LibelleStatut(f.Stock.Statut))
	return row.New(18).Add(
		col.New(7).Add(
			text.New(f.Stock.Designation, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Statut : "+statut, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHE MATÉRIEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Créée le "+f.DateCreation.Format(formatDate), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRows : bloc des totaux rejoués, avec la ligne d'écart si nécessaire.
func totalsRows(f *fiche.FicheMateriel) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	rows := []core.Row{
		row.New(7).Add(
			col.New(4).Add(label("Quantité initiale")),
			col.New(2).Add(value(fmt.Sprintf("%d", f.QuantiteInitiale))),
			col.New(4).Add(label("Total approvisionné")),
			col.New(2).Add(value(fmt.Sprintf("+%d", f.TotalApprovisionne))),
		),
		row.New(7).Add(
			col.New(4).Add(label("Quantité en stock")),
			col.New(2).Add(value(fmt.Sprintf("%d", f.Stock.Quantite))),
			col.New(4).Add(label("Total retiré")),
			col.New(2).Add(value(fmt.Sprintf("-%d", f.TotalRetire))),
		),
		row.New(7).Add(
			col.New(4).Add(label("Quantité calculée")),
			col.New(2).Add(value(fmt.Sprintf("%d", f.QuantiteCalculee))),
			col.New(6),
		),
	}

	if f.Ecart() {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("ÉCART : quantité calculée %d ≠ quantité en stock %d",
					f.QuantiteCalculee, f.Stock.Quantite),
				props.Text{Style: fontstyle.Bold, Size: 9, Color: colorAlert},
			)),
		))
	}
	return rows
}

// tableHeaderRow : en-tête de la table des mouvements.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Type", 2, align.Left),
		h("Qté", 1, align.Right),
		h("Avant → Après", 2, align.Center),
		h("Motif", 3, align.Left),
		h("Acteur", 2, align.Left),
	)
}

// movementRow : une ligne par mouvement, du plus récent au plus ancien.
func movementRow(m *entity.StockMovement) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			m.DateMovement.Format(formatDate),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			m.Type,
			props.Text{Size: 8, Align: align.Left, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%+d", m.Signe()),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d → %d", m.QuantiteAvant, m.QuantiteApres),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			m.Description,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			m.Utilisateur,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
	)
}
