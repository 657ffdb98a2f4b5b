// Package pdf renders quote documents with go-pdf/fpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"

	"wiz_adquote/internal/domain/entities"
	"wiz_adquote/internal/usecase/interfaces"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 8.0
	qrSize       = 22.0
)

// Candidate Korean fonts, first hit wins. Helvetica remains the fallback when
// none is installed, degrading Korean glyphs the same way the preview does on
// a machine without CJK fonts.
var koreanFontPaths = []string{
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"fonts/NotoSansKR-Regular.ttf",
}

// Fixed sender block printed on every estimate.
var companyInfo = struct {
	Name           string
	BusinessNumber string
	Phone          string
	Address        string
}{
	Name:           "(주)위즈더플래닝",
	BusinessNumber: "668-81-00391",
	Phone:          "1670-0704",
	Address:        "서울시 금천구 디지털로 178 A동 2518호, 19호",
}

// Generator renders estimate PDFs into the output directory and stamps each
// one with a QR code pointing at its download location.
type Generator struct {
	outputDir string
	baseURL   string
	log       zerolog.Logger
}

var _ interfaces.IDocumentGenerator = (*Generator)(nil)

// NewGenerator reads OUTPUT_DIR (default "output") and PUBLIC_BASE_URL
// (default "http://localhost:8080") from the environment.
func NewGenerator(log zerolog.Logger) *Generator {
	return &Generator{
		outputDir: getenvDefault("OUTPUT_DIR", "output"),
		baseURL:   strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		log:       log,
	}
}

// Generate renders one estimate PDF when the estimate document kind was
// selected. Proposal documents are a fixed company PDF attached at send time,
// so they produce no artifact here.
func (g *Generator) Generate(_ context.Context, quote entities.Quote, totals entities.Totals) (entities.GenerationResult, error) {
	if !quote.HasDocType(entities.DocTypeEstimate) {
		return entities.GenerationResult{Success: true}, nil
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return entities.GenerationResult{}, fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now()
	id := uuid.NewString()
	fileName := estimateFileName(quote.Customer.Company, now)
	path := filepath.Join(g.outputDir, fileName)

	if err := g.renderEstimate(path, quote, totals, id, now); err != nil {
		g.log.Error().Err(err).Str("path", path).Msg("estimate render failed")
		return entities.GenerationResult{}, err
	}
	g.log.Info().Str("path", path).Str("artifact_id", id).Msg("estimate rendered")

	return entities.GenerationResult{
		Success: true,
		Artifacts: []entities.Artifact{{
			ID:        id,
			DocType:   entities.DocTypeEstimate,
			FileName:  fileName,
			Path:      path,
			Company:   quote.Customer.Company,
			CreatedAt: now.UTC(),
		}},
	}, nil
}

func (g *Generator) renderEstimate(path string, quote entities.Quote, totals entities.Totals, id string, now time.Time) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 25)
	font := registerKoreanFont(doc)
	doc.AddPage()

	// Title and issue date
	doc.SetFont(font, "B", 22)
	doc.SetTextColor(51, 51, 51)
	doc.SetXY(marginLeft, marginTop)
	doc.CellFormat(contentWidth, 12, "견 적 서", "", 1, "C", false, 0, "")
	doc.SetFont(font, "", 10)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(contentWidth, 6, now.Format("2006년 01월 02일"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Recipient
	doc.SetFont(font, "B", 11)
	doc.SetTextColor(51, 51, 51)
	doc.CellFormat(contentWidth, rowHeight, "수신: "+orDash(quote.Customer.Company), "", 1, "L", false, 0, "")
	doc.SetFont(font, "", 10)
	doc.CellFormat(contentWidth, 6, orDash(quote.Customer.Name)+" 님 귀하", "", 1, "L", false, 0, "")
	doc.Ln(3)
	doc.SetDrawColor(74, 108, 247)
	doc.SetLineWidth(0.6)
	doc.Line(marginLeft, doc.GetY(), pageWidth-marginRight, doc.GetY())
	doc.Ln(5)

	// Item table
	colWidths := []float64{60, 35, 37.5, 37.5}
	headers := []string{"아파트명", "모니터 대수", "대당 단가", "월 견적"}
	doc.SetFont(font, "B", 10)
	doc.SetFillColor(245, 245, 245)
	doc.SetDrawColor(221, 221, 221)
	doc.SetLineWidth(0.2)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont(font, "", 10)
	for _, item := range quote.LineItems {
		doc.CellFormat(colWidths[0], rowHeight, item.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[1], rowHeight, fmt.Sprintf("%d대", item.MonitorCount), "1", 0, "C", false, 0, "")
		doc.CellFormat(colWidths[2], rowHeight, entities.FormatKRW(item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[3], rowHeight, entities.FormatKRW(item.MonthlyTotal()), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}
	doc.Ln(5)

	// Summary box
	summaryRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont(font, style, 10)
		doc.CellFormat(contentWidth-50, rowHeight, label, "", 0, "L", false, 0, "")
		doc.CellFormat(50, rowHeight, value, "", 1, "R", false, 0, "")
	}
	summaryRow("총 월 견적", entities.FormatKRW(totals.TotalMonthly), false)
	if totals.DiscountPercent > 0 {
		summaryRow(quote.DiscountTier.Label(), "-"+entities.FormatKRW(totals.DiscountAmount), false)
	}
	summaryRow("월 최종 금액", entities.FormatKRW(totals.MonthlyFinal), true)
	summaryRow(fmt.Sprintf("총 계약 금액 (%d개월)", totals.Months), entities.FormatKRW(totals.FinalTotal), true)
	doc.SetFont(font, "", 8)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(contentWidth, 5, "※ 부가세 별도", "", 1, "R", false, 0, "")
	doc.Ln(4)

	// Notes
	doc.SetFont(font, "", 9)
	doc.SetTextColor(51, 51, 51)
	for _, note := range []string{
		"본 견적서의 유효기간은 발행일로부터 30일입니다.",
		"세부 사항은 협의 후 조정될 수 있습니다.",
		"문의사항이 있으시면 아래 담당자에게 연락 부탁드립니다.",
	} {
		doc.CellFormat(contentWidth, 5.5, "- "+note, "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	// Sender block
	doc.SetFont(font, "B", 11)
	doc.CellFormat(contentWidth, 7, companyInfo.Name, "", 1, "L", false, 0, "")
	doc.SetFont(font, "", 9)
	doc.SetTextColor(102, 102, 102)
	doc.CellFormat(contentWidth, 5, "사업자번호: "+companyInfo.BusinessNumber, "", 1, "L", false, 0, "")
	doc.CellFormat(contentWidth, 5, "주소: "+companyInfo.Address, "", 1, "L", false, 0, "")
	doc.CellFormat(contentWidth, 5, "대표전화: "+companyInfo.Phone, "", 1, "L", false, 0, "")

	if quote.Manager.Name != "" {
		doc.Ln(2)
		doc.SetFont(font, "B", 9)
		doc.SetTextColor(51, 51, 51)
		doc.CellFormat(contentWidth, 5, "담당자: "+strings.TrimSpace(quote.Manager.Name+" "+quote.Manager.Position), "", 1, "L", false, 0, "")
		doc.SetFont(font, "", 9)
		doc.SetTextColor(102, 102, 102)
		if quote.Manager.Phone != "" {
			doc.CellFormat(contentWidth, 5, "Tel: "+quote.Manager.Phone, "", 1, "L", false, 0, "")
		}
		if quote.Manager.Email != "" {
			doc.CellFormat(contentWidth, 5, "Email: "+quote.Manager.Email, "", 1, "L", false, 0, "")
		}
	}

	g.stampDownloadQR(doc, font, id)

	return doc.OutputFileAndClose(path)
}

// stampDownloadQR places a QR code linking to the artifact download in the
// bottom-right corner of the current page.
func (g *Generator) stampDownloadQR(doc *fpdf.Fpdf, font, id string) {
	url := g.baseURL + "/v1/quotes/artifacts/" + id
	qrPNG, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		g.log.Warn().Err(err).Msg("download qr skipped")
		return
	}

	imgName := "qr_" + id
	doc.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	_, pageH := doc.GetPageSize()
	x := pageWidth - marginRight - qrSize
	y := pageH - qrSize - 12
	doc.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	doc.SetFont(font, "", 7)
	doc.SetTextColor(102, 102, 102)
	doc.SetXY(x, y+qrSize)
	doc.CellFormat(qrSize, 4, "문서 다운로드", "", 0, "C", false, 0, "")
}

// registerKoreanFont registers the first usable CJK-capable font and returns
// its family name, or Helvetica when none is found.
func registerKoreanFont(doc *fpdf.Fpdf) string {
	for _, p := range koreanFontPaths {
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		doc.AddUTF8Font("gothic", "", p)
		doc.AddUTF8Font("gothic", "B", p)
		if doc.Err() {
			return "Helvetica"
		}
		return "gothic"
	}
	return "Helvetica"
}

func estimateFileName(company string, now time.Time) string {
	name := sanitizeFileName(company)
	if name == "" {
		name = "견적"
	}
	return fmt.Sprintf("견적서_%s_%s.pdf", name, now.Format("20060102_150405"))
}

// sanitizeFileName strips path separators and whitespace from a
// customer-supplied company name before it becomes part of a file name.
func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		case ' ', '\t':
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
}

// orDash substitutes "-" for an empty field so blank recipient lines still
// render a placeholder.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
