package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// SharePayload is the envelope encoded into a share QR code: a format
// version, the panel's name, and its portable style config.
type SharePayload struct {
	Version string                   `json:"version"`
	Panel   string                   `json:"panel"`
	Config  model.TransferableConfig `json:"config"`
}

const sharePayloadVersion = "1"

// qrImageSize is the rendered QR code size in pixels.
const qrImageSize = 512

// EncodeShare marshals a panel's portable style into the share payload
// JSON. Source bindings are deliberately absent: they describe this
// machine, not the layout.
func EncodeShare(panel model.Panel) ([]byte, error) {
	payload := SharePayload{
		Version: sharePayloadVersion,
		Panel:   panel.Name,
		Config:  panel.Style.Transferable(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal share payload: %w", err)
	}
	return data, nil
}

// DecodeShare parses a scanned share payload back into its parts.
func DecodeShare(data []byte) (SharePayload, error) {
	var payload SharePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return SharePayload{}, fmt.Errorf("failed to parse share payload: %w", err)
	}
	if payload.Version == "" {
		return SharePayload{}, fmt.Errorf("invalid share payload: missing version field")
	}
	if !payload.Config.HasContent() {
		return SharePayload{}, fmt.Errorf("share payload carries no layout")
	}
	return payload, nil
}

// ShareQR writes a panel's portable style as a QR code PNG. Low error
// correction keeps room for content-heavy layouts; a layout too large
// for any QR version reports an error rather than truncating.
func ShareQR(path string, panel model.Panel) error {
	data, err := EncodeShare(panel)
	if err != nil {
		return err
	}
	if err := qrcode.WriteFile(string(data), qrcode.Low, qrImageSize, path); err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	return nil
}

// ShareCard generates a one-page PDF share card: the panel's name and
// theme, a summary of its layout, and the QR code to scan.
func ShareCard(path string, panel model.Panel) error {
	data, err := EncodeShare(panel)
	if err != nil {
		return err
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Low, qrImageSize)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	layout := computeLayout(panel)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	const cardPageWidth = 210.0

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(20, 25)
	pdf.CellFormat(cardPageWidth-40, 10, panel.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(20, 36)
	subtitle := fmt.Sprintf("%s theme | %d groups, %d items",
		panel.Style.Style, layout.stats.GroupCount, layout.stats.ItemCount)
	pdf.CellFormat(cardPageWidth-40, 6, subtitle, "", 1, "C", false, 0, "")

	// QR code, centered
	const qrCardSize = 100.0
	pdf.RegisterImageOptionsReader("share_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("share_qr", (cardPageWidth-qrCardSize)/2, 55, qrCardSize, qrCardSize, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Theme swatches under the code
	theme := panel.Style.Theme
	swatchY := 165.0
	swatchX := (cardPageWidth - 4*18.0) / 2
	for slot := 1; slot <= 4; slot++ {
		c := theme.GetColor(slot)
		setFill(pdf, c)
		pdf.SetDrawColor(120, 120, 120)
		pdf.SetLineWidth(0.2)
		pdf.Rect(swatchX, swatchY, 6, 6, "FD")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(swatchX, swatchY+7)
		pdf.CellFormat(16, 3, c.Hex(), "", 0, "L", false, 0, "")

		swatchX += 18
	}

	// Instructions
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(20, 185)
	pdf.CellFormat(cardPageWidth-40, 5,
		"Scan this code in PulseBoard (Tools > Import from QR) to apply the layout.", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(20, 193)
	pdf.CellFormat(cardPageWidth-40, 4,
		"Data source bindings are not included; slots keep their receiving panel's sources.", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
