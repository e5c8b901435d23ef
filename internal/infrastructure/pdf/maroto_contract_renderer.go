// Package pdf renderização da minuta de contrato em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: WS Brasil I.C. + título da minuta  │
//	│  ─────────────────────────────────────────  │
//	│  CORPO: cláusulas geradas, parágrafo a      │
//	│  parágrafo                                  │
//	│  ─────────────────────────────────────────  │
//	│  RODAPÉ: linhas de assinatura + data        │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

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

	"github.com/wsbrasil/nexus-api/internal/application/ports"
)

var _ ports.ContractPDFRenderer = (*MarotoContractRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 148, Blue: 136}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoContractRenderer implementa ContractPDFRenderer usando Maroto v2.
type MarotoContractRenderer struct{}

func NewMarotoContractRenderer() *MarotoContractRenderer { return &MarotoContractRenderer{} }

// RenderContract monta o PDF da minuta e devolve seus bytes.
func (r *MarotoContractRenderer) RenderContract(_ context.Context, title, body string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		WithAuthor("WS Brasil Inteligência Comercial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, paragraph := range strings.Split(body, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		m.AddRows(paragraphRow(paragraph))
	}

	m.AddRows(line.NewRow(6, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar minuta: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("WS BRASIL INTELIGÊNCIA COMERCIAL", props.Text{
				Size: 12, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(title, props.Text{Size: 10, Top: 7}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func paragraphRow(paragraph string) core.Row {
	// Altura proporcional ao texto; Maroto quebra linhas dentro da célula.
	height := float64(5 + len(paragraph)/90*4)
	return row.New(height).Add(
		col.New(12).Add(
			text.New(paragraph, props.Text{Size: 10, Align: align.Left}),
		),
	)
}

func signatureRow() core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New("_______________________________", props.Text{Size: 10, Top: 8, Align: align.Center}),
			text.New("CONTRATANTE", props.Text{Size: 8, Top: 14, Align: align.Center, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("_______________________________", props.Text{Size: 10, Top: 8, Align: align.Center}),
			text.New("CONTRATADA", props.Text{Size: 8, Top: 14, Align: align.Center, Color: colorGray}),
		),
	)
}
