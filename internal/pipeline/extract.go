package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	pdf "github.com/ledongthuc/pdf"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"promob/internal"
	"promob/internal/util"
)

var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

const htmlBlocks = "h1,h2,h3,h4,h5,h6,p,li,dt,dd,tr"

// KindForPath picks the input kind from the file extension; anything
// unrecognized is read as plain text.
func KindForPath(path string) internal.InputKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return internal.InputHTML
	case ".pdf":
		return internal.InputPDF
	case ".eml":
		return internal.InputEmail
	case ".xlsx":
		return internal.InputXLSX
	default:
		return internal.InputText
	}
}

// ExtractText turns an exported file into the line-oriented text Parse reads.
func ExtractText(kind internal.InputKind, blob []byte) (string, error) {
	switch kind {
	case internal.InputText:
		if !utf8.Valid(blob) {
			return "", ErrInvalidEncoding
		}
		return string(blob), nil
	case internal.InputHTML:
		return extractHTML(string(blob))
	case internal.InputPDF:
		return extractPDF(blob)
	case internal.InputEmail:
		return extractEmail(blob)
	case internal.InputXLSX:
		return extractXLSX(blob)
	default:
		return "", fmt.Errorf("unsupported input type: %s", kind)
	}
}

func extractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	lines := []string{}
	doc.Find(htmlBlocks).Each(func(_ int, sel *goquery.Selection) {
		// Blocks holding other blocks contribute only their own text, as a header.
		if sel.Find(htmlBlocks).Length() > 0 {
			if own := ownText(sel); own != "" {
				lines = append(lines, own)
			}
			return
		}
		var line string
		switch goquery.NodeName(sel) {
		case "tr":
			cells := []string{}
			sel.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, cell.Text())
			})
			line = rowToLine(cells)
		case "li", "dd":
			line = asFieldLine(util.CollapseSpaces(sel.Text()))
		default:
			line = util.CollapseSpaces(sel.Text())
		}
		if line != "" {
			lines = append(lines, line)
		}
	})
	return strings.Join(lines, "\n"), nil
}

// ownText is the text of sel outside any nested block.
func ownText(sel *goquery.Selection) string {
	own := sel.Contents().FilterFunction(func(_ int, c *goquery.Selection) bool {
		return !c.Is(htmlBlocks) && c.Find(htmlBlocks).Length() == 0
	})
	return util.CollapseSpaces(own.Text())
}

func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := []string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			log.Warnf("Skipping PDF page %d: %v", i, err)
			continue
		}
		pages = append(pages, strings.ToValidUTF8(text, ""))
	}
	return strings.Join(pages, "\n"), nil
}

// extractEmail reads the message body and any attached exports, in that order.
func extractEmail(raw []byte) (string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to read e-mail: %w", err)
	}

	parts := []string{}
	switch {
	case strings.TrimSpace(env.Text) != "":
		parts = append(parts, env.Text)
	case env.HTML != "":
		body, err := extractHTML(env.HTML)
		if err != nil {
			return "", err
		}
		parts = append(parts, body)
	}

	for _, att := range env.Attachments {
		filename := strings.TrimSpace(att.FileName)
		if filename == "" {
			log.Debug("Skipping unnamed attachment")
			continue
		}
		kind := KindForPath(filename)
		if kind == internal.InputEmail {
			continue
		}
		if kind == internal.InputText && !strings.EqualFold(filepath.Ext(filename), ".txt") {
			log.Debugf("Skipping attachment %s", filename)
			continue
		}
		text, err := ExtractText(kind, att.Content)
		if err != nil {
			log.Warnf("Skipping attachment %s: %v", filename, err)
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}

func extractXLSX(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	lines := []string{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warnf("Skipping sheet %s: %v", sheet, err)
			continue
		}
		for _, row := range rows {
			if line := rowToLine(row); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}

// rowToLine maps a table row onto the text format: a lone cell is kept as
// is (header or field line), a label followed by values becomes a field line.
func rowToLine(row []string) string {
	cells := make([]string, 0, len(row))
	for _, c := range row {
		if c = util.CollapseSpaces(c); c != "" {
			cells = append(cells, c)
		}
	}
	switch len(cells) {
	case 0:
		return ""
	case 1:
		return cells[0]
	}
	label := strings.TrimSpace(strings.TrimPrefix(cells[0], fieldMarker))
	label = strings.TrimSuffix(label, ":")
	return fieldMarker + " " + label + ": " + strings.Join(cells[1:], ", ")
}

func asFieldLine(line string) string {
	if line == "" || strings.HasPrefix(line, fieldMarker) {
		return line
	}
	return fieldMarker + " " + line
}
