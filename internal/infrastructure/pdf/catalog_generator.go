// Package pdf implementa a geração do catálogo da vitrine em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da loja  │  WhatsApp                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Marca | Tamanho | Preço                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: link da vitrine                                     │
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

	appstorefront "github.com/lojaviva/varejo-api/internal/application/storefront"
	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 14, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appstorefront.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa storefront.CatalogPDFGenerator com Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator constrói o gerador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF gera o catálogo e devolve seus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, store *entity.User, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+store.StoreName, true).
		WithAuthor(store.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(store))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(store *entity.User) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(store.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("WhatsApp: "+store.WhatsApp, props.Text{
				Size: 9, Top: 5, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(5).Add(text.New("Produto", header)),
		col.New(3).Add(text.New("Marca", header)),
		col.New(2).Add(text.New("Tamanho", header)),
		col.New(2).Add(text.New("Preço (R$)", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(5).Add(text.New(p.StorefrontName(), cell)),
		col.New(3).Add(text.New(p.Brand, cell)),
		col.New(2).Add(text.New(p.Size, cell)),
		col.New(2).Add(text.New(p.SalePrice.StringFixed(2), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func footerRow(store *entity.User) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("vitrine: /store/"+store.StoreSlug, props.Text{
				Size: 8, Color: colorGray, Top: 2, Align: align.Center,
			}),
		),
	)
}
