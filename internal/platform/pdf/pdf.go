package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"pulse/internal/domain/report"
)

// Render produces a printable A4 document from a report skeleton. Polish
// text is mapped through the cp1250 code page since the core fonts are not
// UTF-8 aware.
func Render(rep *report.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	content := rep.Content

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, tr(content.TitlePage.ReportTitle), "", "C", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, tr(content.TitlePage.CompanyName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Wygenerowano: %s", content.Metadata.GeneratedAt)), "", 1, "C", false, 0, "")

	pdf.AddPage()
	writeHeadline(pdf, tr, content.OverallAnalysis.Engagement)
	pdf.Ln(4)
	writeHeadline(pdf, tr, content.OverallAnalysis.Satisfaction)
	pdf.Ln(6)
	writeRanked(pdf, tr, content.OverallAnalysis.TopScores.Lowest)
	pdf.Ln(4)
	writeRanked(pdf, tr, content.OverallAnalysis.TopScores.Highest)

	for _, area := range content.DetailedAreas {
		pdf.AddPage()
		writeArea(pdf, tr, area)
	}

	if len(content.LeaderGuidelines) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr("Wskazówki dla liderów"), "", 1, "", false, 0, "")
		for _, guideline := range content.LeaderGuidelines {
			writeGuideline(pdf, tr, guideline)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeadline(pdf *gofpdf.Fpdf, tr func(string) string, headline report.HeadlineScore) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(headline.Title), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	if headline.Missing {
		pdf.CellFormat(0, 7, tr("Brak danych dla tego wskaźnika."), "", 1, "", false, 0, "")
		return
	}
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Wynik: %.2f / 5 (poziom %d)", headline.OverallScore, headline.Level)), "", 1, "", false, 0, "")
	if headline.Definition != "" {
		pdf.MultiCell(0, 6, tr(headline.Definition), "", "", false)
	}
	writePoints(pdf, tr, headline.Recommendations)
}

func writeRanked(pdf *gofpdf.Fpdf, tr func(string) string, block report.RankedBlock) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(block.Title), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range block.Data {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %.2f (%s)", row.Area, row.Average, row.Range)), "", 1, "", false, 0, "")
	}
	if block.Insight != "" {
		pdf.MultiCell(0, 6, tr(block.Insight), "", "", false)
	}
}

func writeArea(pdf *gofpdf.Fpdf, tr func(string) string, area report.DetailedArea) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(area.AreaName), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(area.CompanySummary.OverallAverageText), "", 1, "", false, 0, "")

	for _, sub := range area.CompanySummary.SubAreasBreakdown {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("  %s: %s (%s)", sub.Name, sub.Value, sub.Score)), "", 1, "", false, 0, "")
	}

	if len(area.CompanySummary.KeyFindingsPoints) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(area.CompanySummary.KeyFindingsHeader), "", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		writePoints(pdf, tr, area.CompanySummary.KeyFindingsPoints)
	}

	if area.CompanySummary.SummaryParagraph != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(area.CompanySummary.SummaryHeader), "", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(area.CompanySummary.SummaryParagraph), "", "", false)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(area.TeamBreakdown.Title), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range area.TeamBreakdown.Data {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %.2f", row.Team, row.Score)), "", 1, "", false, 0, "")
		if row.Interpretation != "" {
			pdf.MultiCell(0, 5, tr("  "+row.Interpretation), "", "", false)
		}
	}

	if len(area.BusinessImpact.Points) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(area.BusinessImpact.Title), "", 1, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		writePoints(pdf, tr, area.BusinessImpact.Points)
	}
}

func writeGuideline(pdf *gofpdf.Fpdf, tr func(string) string, guideline report.LeaderGuideline) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(guideline.Department), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	writeList(pdf, tr, "START", guideline.Start)
	writeList(pdf, tr, "STOP", guideline.Stop)
	writeList(pdf, tr, "CONTINUE", guideline.Continue)
	writeList(pdf, tr, "WELCOME", guideline.Welcome)
}

func writeList(pdf *gofpdf.Fpdf, tr func(string) string, label string, points []string) {
	if len(points) == 0 {
		return
	}
	pdf.CellFormat(0, 6, tr(label+":"), "", 1, "", false, 0, "")
	writePoints(pdf, tr, points)
}

func writePoints(pdf *gofpdf.Fpdf, tr func(string) string, points []string) {
	for _, point := range points {
		pdf.MultiCell(0, 5, tr("- "+point), "", "", false)
	}
}
