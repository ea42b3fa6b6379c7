package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/hyperifyio/fbusecases/internal/extract"
)

// PDF renders a minimal A4 document: the banner, then each use case as a
// bold numbered heading over a wrapped description. This does not perform
// Markdown layout.
func PDF(w io.Writer, cases []extract.UseCase) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Banner, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, Banner, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, c := range cases {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, toWinAnsi(strconv.Itoa(i+1)+". "+c.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, toWinAnsi(c.Description), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// toWinAnsi transcodes s to Windows-1252, the encoding of the core PDF fonts.
// Runes outside that code page become '?'.
func toWinAnsi(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
