package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jung-kurt/gofpdf"
)

// Text alignment
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Font style
const (
	StyleNormal = ""
	StyleBold   = "B"
	StyleItalic = "I"
)

// coreFont is used when the configured TTF family is not installed.
const coreFont = "Helvetica"

// Options are the fixed page settings of a rendered document.
type Options struct {
	PageSize    string // "A4", "Letter", ...
	Orientation string // "P" or "L"
	DPI         int    // resolution assumed for embedded images
	FontFamily  string // e.g. "DejaVu Sans", loaded from FontDir/DejaVuSans.ttf
	FontDir     string
}

// DefaultOptions returns A4 portrait at 150 DPI with DejaVu Sans.
func DefaultOptions() Options {
	return Options{
		PageSize:    "A4",
		Orientation: "P",
		DPI:         150,
		FontFamily:  "DejaVu Sans",
	}
}

// Column describes one table column.
type Column struct {
	Width float64
	Align string
}

// Document builds a PDF page by page. Methods chain like a cursor-based writer.
type Document struct {
	pdf        *gofpdf.Fpdf
	opts       Options
	family     string
	tr         func(string) string
	fontSize   float64
	lineHeight float64
	images     int
}

// NewDocument creates a document with one empty page.
func NewDocument(opts Options) *Document {
	def := DefaultOptions()
	if opts.PageSize == "" {
		opts.PageSize = def.PageSize
	}
	if opts.Orientation == "" {
		opts.Orientation = def.Orientation
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}

	f := gofpdf.New(opts.Orientation, "mm", opts.PageSize, opts.FontDir)
	f.SetMargins(15, 15, 15)
	f.SetAutoPageBreak(true, 20)

	d := &Document{
		pdf:        f,
		opts:       opts,
		tr:         func(s string) string { return s },
		fontSize:   10,
		lineHeight: 5,
	}
	d.loadFont()
	f.AddPage()
	d.SetFont(StyleNormal, d.fontSize)
	return d
}

// loadFont registers the configured TTF family, or falls back to a core font
// with a cp1252 translator when the font files are missing. gofpdf resolves
// font file names against FontDir, so only bare names are passed to it.
func (d *Document) loadFont() {
	family := strings.ReplaceAll(d.opts.FontFamily, " ", "")
	regular, bold, oblique := family+".ttf", family+"-Bold.ttf", family+"-Oblique.ttf"

	if family != "" && d.fontExists(regular) && d.fontExists(bold) {
		d.pdf.AddUTF8Font(family, StyleNormal, regular)
		d.pdf.AddUTF8Font(family, StyleBold, bold)
		if d.fontExists(oblique) {
			d.pdf.AddUTF8Font(family, StyleItalic, oblique)
		}
		if !d.pdf.Err() {
			d.family = family
			return
		}
		d.pdf.ClearError()
	}

	d.family = coreFont
	d.tr = d.pdf.UnicodeTranslatorFromDescriptor("")
}

// FontFamily returns the family actually in use.
func (d *Document) FontFamily() string {
	return d.family
}

// SetFont sets the font style ("", "B", "I") and size in points.
func (d *Document) SetFont(style string, size float64) *Document {
	if style == StyleItalic && d.family != coreFont {
		if !d.fontExists(d.family + "-Oblique.ttf") {
			style = StyleNormal
		}
	}
	d.fontSize = size
	d.lineHeight = size * 0.5
	d.pdf.SetFont(d.family, style, size)
	return d
}

// SetTextColor sets the RGB text color.
func (d *Document) SetTextColor(r, g, b int) *Document {
	d.pdf.SetTextColor(r, g, b)
	return d
}

// Text writes a wrapped paragraph across the full content width.
func (d *Document) Text(s string) *Document {
	return d.TextAlign(s, AlignLeft)
}

// TextF writes a formatted paragraph across the full content width.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// TextAlign writes a wrapped paragraph with the given alignment.
func (d *Document) TextAlign(s, align string) *Document {
	d.pdf.MultiCell(0, d.lineHeight, d.tr(s), "", align, false)
	return d
}

// KeyValue prints a label and value on one line within width mm,
// starting at the current X. The value is right aligned.
func (d *Document) KeyValue(key, value string, width float64) *Document {
	half := width / 2
	d.pdf.CellFormat(half, d.lineHeight+1, d.tr(key), "", 0, AlignLeft, false, 0, "")
	d.pdf.CellFormat(width-half, d.lineHeight+1, d.tr(value), "", 1, AlignRight, false, 0, "")
	return d
}

// Label prints "label : value" with a fixed label column.
func (d *Document) Label(label, value string, labelWidth float64) *Document {
	d.pdf.CellFormat(labelWidth, d.lineHeight+1, d.tr(label), "", 0, AlignLeft, false, 0, "")
	d.pdf.CellFormat(4, d.lineHeight+1, ":", "", 0, AlignLeft, false, 0, "")
	d.pdf.MultiCell(0, d.lineHeight+1, d.tr(value), "", AlignLeft, false)
	return d
}

// TableHeader prints a shaded, bordered header row.
func (d *Document) TableHeader(cols []Column, titles []string) *Document {
	d.pdf.SetFillColor(230, 230, 230)
	for i, col := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		d.pdf.CellFormat(col.Width, d.lineHeight+3, d.tr(cellAt(titles, i)), "1", ln, AlignCenter, true, 0, "")
	}
	return d
}

// TableRow prints a bordered row. Long values are truncated to the column width.
func (d *Document) TableRow(cols []Column, values []string) *Document {
	for i, col := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		text := d.fit(d.tr(cellAt(values, i)), col.Width-2)
		d.pdf.CellFormat(col.Width, d.lineHeight+3, text, "1", ln, col.Align, false, 0, "")
	}
	return d
}

// Image places an inline data URI image at (x, y) with width w mm; height is
// derived from the aspect ratio when h is 0. It returns the placed height.
// Missing or undecodable images are skipped and ok is false.
func (d *Document) Image(dataURI string, x, y, w, h float64) (height float64, ok bool) {
	data, ok := decodeDataURI(dataURI)
	if !ok {
		return 0, false
	}

	imageType := imageTypeOf(data)
	if imageType == "" {
		return 0, false
	}

	d.images++
	name := fmt.Sprintf("img%d", d.images)
	info := d.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if d.pdf.Err() || info == nil {
		d.pdf.ClearError()
		return 0, false
	}
	info.SetDpi(float64(d.opts.DPI))

	if h == 0 && w > 0 && info.Width() > 0 {
		h = w * info.Height() / info.Width()
	}
	d.pdf.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{ImageType: imageType}, 0, "")
	return h, true
}

// Separator draws a horizontal rule across the content width.
func (d *Document) Separator() *Document {
	left, _, right, _ := d.pdf.GetMargins()
	pageWidth, _ := d.pdf.GetPageSize()
	y := d.pdf.GetY() + 1
	d.pdf.Line(left, y, pageWidth-right, y)
	d.pdf.SetY(y + 2)
	return d
}

// LineFeed moves the cursor down by h mm.
func (d *Document) LineFeed(h float64) *Document {
	d.pdf.Ln(h)
	return d
}

// SetX sets the cursor X position.
func (d *Document) SetX(x float64) *Document {
	d.pdf.SetX(x)
	return d
}

// SetY sets the cursor Y position and resets X to the left margin.
func (d *Document) SetY(y float64) *Document {
	d.pdf.SetY(y)
	return d
}

// X returns the cursor X position.
func (d *Document) X() float64 {
	return d.pdf.GetX()
}

// Y returns the cursor Y position.
func (d *Document) Y() float64 {
	return d.pdf.GetY()
}

// Left returns the left margin.
func (d *Document) Left() float64 {
	left, _, _, _ := d.pdf.GetMargins()
	return left
}

// ContentWidth returns the page width minus horizontal margins.
func (d *Document) ContentWidth() float64 {
	left, _, right, _ := d.pdf.GetMargins()
	pageWidth, _ := d.pdf.GetPageSize()
	return pageWidth - left - right
}

// EnsureSpace starts a new page when less than h mm remain above the bottom margin.
func (d *Document) EnsureSpace(h float64) *Document {
	_, pageHeight := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	if d.pdf.GetY()+h > pageHeight-bottom {
		d.pdf.AddPage()
	}
	return d
}

// Bytes renders the document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) fit(s string, width float64) string {
	if width <= 0 || d.pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && d.pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func decodeDataURI(uri string) ([]byte, bool) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, false
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 || !strings.Contains(uri[:comma], ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// imageTypeOf sniffs the real image format; the data URI prefix is not trusted.
func imageTypeOf(data []byte) string {
	switch mimetype.Detect(data).String() {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}

func cellAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func (d *Document) fontExists(name string) bool {
	info, err := os.Stat(filepath.Join(d.opts.FontDir, name))
	return err == nil && !info.IsDir()
}
