// Package pdf is the print output adapter: it draws the rendering engine's
// normalized view onto a single A4 page. It never regroups or reorders
// items, so screen and paper always agree.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ardoise/menu-du-jour/menu"
)

const (
	pageMarginX = 25.0 // mm
	pageMarginY = 18.0
	fontFamily  = "Times"
)

// Generate renders the menu view to PDF bytes. It fails closed: any
// renderer error aborts the request with no partial document, and a done
// context (the handler applies a ~30s budget) is honored between sections.
func Generate(ctx context.Context, v menu.View) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMarginX, pageMarginY, pageMarginX)
	doc.SetAutoPageBreak(false, pageMarginY)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageW, _ := doc.GetPageSize()
	contentW := pageW - 2*pageMarginX

	drawHeader(doc, tr, v, contentW)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(v.Beverages) > 0 {
		doc.Ln(4)
		drawItems(doc, tr, v.Beverages, contentW, true)
	}

	for _, group := range v.Groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc.Ln(5)
		doc.SetFont(fontFamily, "B", 14)
		doc.CellFormat(contentW, 8, tr(group.Title), "", 1, "C", false, 0, "")
		doc.Ln(1)
		drawItems(doc, tr, group.Items, contentW, false)
	}

	drawFooter(doc, tr, v.Design, pageW, contentW)

	if doc.Err() {
		return nil, fmt.Errorf("rendu PDF impossible: %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendu PDF impossible: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeader(doc *fpdf.Fpdf, tr func(string) string, v menu.View, contentW float64) {
	d := v.Design

	doc.SetFont(fontFamily, "", 9)
	doc.CellFormat(contentW/2, 5, tr("Carafe d'eau gratuite"), "", 0, "L", false, 0, "")
	doc.CellFormat(contentW/2, 5, tr("Service compris 15%"), "", 1, "R", false, 0, "")
	doc.Ln(4)

	doc.SetFont(fontFamily, "B", 24)
	doc.CellFormat(contentW, 10, tr(v.RestaurantName), "", 1, "C", false, 0, "")

	if d.Type != "" {
		doc.SetFont(fontFamily, "I", 11)
		doc.CellFormat(contentW, 6, tr(d.Type), "", 1, "C", false, 0, "")
	}

	doc.SetFont(fontFamily, "", 11)
	opening := "est ouvert " + d.OpeningDays
	if d.OpeningDays2 != "" {
		opening += " " + d.OpeningDays2
	}
	doc.CellFormat(contentW, 6, tr(opening), "", 1, "C", false, 0, "")

	doc.SetFont(fontFamily, "B", 12)
	doc.CellFormat(contentW, 7, tr("Aujourd'hui "+v.DateCompact), "", 1, "C", false, 0, "")

	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(contentW, 5, tr("Service "+d.LunchHours+"   "+d.DinnerHours), "", 1, "C", false, 0, "")

	if d.SidesNote != "" {
		doc.SetFont(fontFamily, "I", 9)
		doc.CellFormat(contentW, 5, tr(d.SidesNote), "", 1, "C", false, 0, "")
	}
}

func drawItems(doc *fpdf.Fpdf, tr func(string) string, items []menu.ViewItem, contentW float64, italic bool) {
	style := ""
	if italic {
		style = "I"
	}
	for _, item := range items {
		doc.SetFont(fontFamily, style, 11)
		priceW := 0.0
		if item.PriceLabel != "" {
			priceW = 26.0
		}
		doc.CellFormat(contentW-priceW, 6, tr(item.Name), "", 0, "L", false, 0, "")
		if item.PriceLabel != "" {
			doc.CellFormat(priceW, 6, tr(item.PriceLabel), "", 0, "R", false, 0, "")
		}
		doc.Ln(-1)
		if item.Description != "" {
			doc.SetFont(fontFamily, "I", 9)
			doc.CellFormat(contentW, 4.5, tr(item.Description), "", 1, "L", false, 0, "")
		}
	}
}

func drawFooter(doc *fpdf.Fpdf, tr func(string) string, d menu.Design, pageW, contentW float64) {
	_, pageH := doc.GetPageSize()
	doc.SetY(pageH - 45)

	if d.HolidayNotice != "" {
		doc.SetFont(fontFamily, "B", 10)
		doc.MultiCell(contentW, 5, tr(d.HolidayNotice), "", "C", false)
		doc.Ln(1)
	}
	if d.Cities != "" {
		doc.SetFont(fontFamily, "", 9)
		doc.MultiCell(contentW, 4.5, tr(d.Cities), "", "C", false)
	}
	doc.SetFont(fontFamily, "", 8)
	doc.MultiCell(contentW, 4, tr(d.MeatOrigin), "", "C", false)
	doc.Ln(1)
	doc.SetFont(fontFamily, "I", 7)
	doc.MultiCell(contentW, 3.5, tr(d.PaymentNotice), "", "C", false)
}
