package services

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

type qrPayload struct {
	Reference     string `json:"reference"`
	PropertyType  string `json:"property_type"`
	Village       string `json:"village"`
	ValuationDate string `json:"valuation_date"`
}

func drawLabel(img *image.RGBA, x, y int, label string, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{30, 30, 30, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(label)
}

// BuildReferenceQR renders a QR code of the report reference with a caption underneath.
func BuildReferenceQR(r ValuationReport, size int) (image.Image, error) {
	data, err := json.Marshal(qrPayload{
		Reference:     r.SessionID,
		PropertyType:  string(r.Basic.PropertyType),
		Village:       r.Location.Selection.Village,
		ValuationDate: r.Basic.ValuationDate,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}
	qr, err := qrcode.New(string(data), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	qrImg := qr.Image(size)

	qrSize := qrImg.Bounds().Dy()
	lineHeight := 24
	totalHeight := qrSize + 3*lineHeight

	out := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
	draw.Draw(out, out.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, qrSize, qrSize), qrImg, image.Point{}, draw.Src)

	ref := r.SessionID
	if len(ref) > 36 {
		ref = ref[:33] + "..."
	}
	drawLabel(out, 12, qrSize+lineHeight, "Ref:", inconsolata.Bold8x16)
	drawLabel(out, 52, qrSize+lineHeight, ref, inconsolata.Regular8x16)
	if v := r.Location.Selection.Village; v != "" {
		drawLabel(out, 12, qrSize+2*lineHeight, "Village:", inconsolata.Bold8x16)
		drawLabel(out, 84, qrSize+2*lineHeight, v, inconsolata.Regular8x16)
	}
	return out, nil
}
