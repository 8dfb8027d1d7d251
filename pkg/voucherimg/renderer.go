// Package voucherimg rasterizes voucher documents into downloadable JPEG
// images, replicating the printed voucher layout: logo and company block,
// document number, labelled fields, a particulars table with large integer
// and small centavo columns, and signature slots.
package voucherimg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"strings"

	// Registered for DecodeDataURL.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const (
	// Logical landscape layout size; the output is scaled by Density.
	BaseWidth = 1000
	MinHeight = 560
	Density   = 2

	marginX      = 48
	marginY      = 40
	lineHeight   = 24
	tableRowH    = 26
	logoW        = 96
	logoH        = 64
	signatureImW = 120
	signatureImH = 48
	jpegQuality  = 90

	// Left edge of the centavos column; integer parts are right-aligned
	// against it.
	centsColX = BaseWidth - marginX - 44
)

// ErrBlankCanvas is returned when the rendered image contains nothing but
// white pixels, which would otherwise be downloaded as an empty voucher.
var ErrBlankCanvas = errors.New("rendered voucher is blank")

var (
	titleFace = inconsolata.Bold8x16
	boldFace  = inconsolata.Bold8x16
	bodyFace  = inconsolata.Regular8x16
	smallFace = basicfont.Face7x13
)

// DecodeDataURL decodes a base64 image data URL (or bare base64 payload)
// into an image. Callers treat failures as non-fatal: the slot is simply
// left blank.
func DecodeDataURL(s string) (image.Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty data URL")
	}
	if idx := strings.Index(s, ","); idx >= 0 && strings.HasPrefix(s, "data:") {
		s = s[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

// Render lays the document out at the logical size and returns the canvas
// scaled to Density. The caller is expected to run the blank guard before
// encoding.
func Render(doc Document) *image.RGBA {
	height := measureHeight(doc)
	canvas := image.NewRGBA(image.Rect(0, 0, BaseWidth, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := drawHeader(canvas, doc)
	y = drawFields(canvas, doc, y)
	drawTable(canvas, doc, y)
	drawSignatures(canvas, doc, height)

	return scaleBy(canvas, Density)
}

// RenderJPEG runs the full export pipeline: layout, blank-canvas guard,
// JPEG encode. No artifact is produced on failure.
func RenderJPEG(doc Document) ([]byte, error) {
	img := Render(doc)
	if IsBlank(img) {
		return nil, ErrBlankCanvas
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsBlank samples the canvas on a coarse grid and reports whether every
// sampled pixel is pure white.
func IsBlank(img image.Image) bool {
	b := img.Bounds()
	const step = 16
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bb, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bb != 0xffff {
				return false
			}
		}
	}
	return true
}

func measureHeight(doc Document) int {
	h := marginY + logoH + lineHeight // header block
	h += len(doc.Fields) * lineHeight
	h += lineHeight // gap before table
	if len(doc.Rows) > 0 {
		h += tableRowH * (len(doc.Rows) + 2) // header + rows + total
	} else {
		h += tableRowH * 2
	}
	h += signatureImH + 3*lineHeight + marginY // signature block
	if h < MinHeight {
		h = MinHeight
	}
	return h
}

func drawHeader(canvas *image.RGBA, doc Document) int {
	x := marginX
	textX := x

	if doc.LogoDataURL != "" {
		if logo, err := DecodeDataURL(doc.LogoDataURL); err == nil {
			dst := image.Rect(x, marginY, x+logoW, marginY+logoH)
			xdraw.ApproxBiLinear.Scale(canvas, dst, logo, logo.Bounds(), xdraw.Over, nil)
			textX = x + logoW + 16
		}
	}

	drawText(canvas, textX, marginY+20, doc.CompanyName, boldFace)
	drawText(canvas, textX, marginY+40, doc.CompanyAddress, smallFace)

	// Title and number, right-aligned
	titleW := textWidth(doc.Kind, titleFace)
	drawText(canvas, BaseWidth-marginX-titleW, marginY+20, doc.Kind, titleFace)
	number := "No. " + doc.Number
	numW := textWidth(number, bodyFace)
	drawText(canvas, BaseWidth-marginX-numW, marginY+44, number, bodyFace)

	y := marginY + logoH + lineHeight
	hline(canvas, marginX, BaseWidth-marginX, y-lineHeight/2)
	return y
}

func drawFields(canvas *image.RGBA, doc Document, y int) int {
	for _, f := range doc.Fields {
		drawText(canvas, marginX, y, f.Label+":", smallFace)
		drawText(canvas, marginX+180, y, f.Value, bodyFace)
		y += lineHeight
	}
	return y + lineHeight
}

func drawTable(canvas *image.RGBA, doc Document, y int) int {
	// Header row
	drawText(canvas, marginX, y, "PARTICULARS", boldFace)
	amountW := textWidth("AMOUNT", boldFace)
	drawText(canvas, centsColX-amountW, y, "AMOUNT", boldFace)
	y += 8
	hline(canvas, marginX, BaseWidth-marginX, y)
	y += tableRowH - 8

	for _, row := range doc.Rows {
		drawText(canvas, marginX, y, row.Description, bodyFace)
		drawAmount(canvas, y, row.Amount.Main, row.Amount.Cents)
		y += tableRowH
	}

	hline(canvas, marginX, BaseWidth-marginX, y-tableRowH/2)
	drawText(canvas, marginX, y, "TOTAL", boldFace)
	drawText(canvas, marginX+64, y, "PHP", smallFace)
	drawAmount(canvas, y, doc.Total.Main, doc.Total.Cents)
	return y + tableRowH
}

// drawAmount right-aligns the integer part against the centavos column and
// draws the centavos left-aligned after it in a smaller face, per the
// printed peso convention.
func drawAmount(canvas *image.RGBA, y int, main, cents string) {
	mainW := textWidth(main, boldFace)
	drawText(canvas, centsColX-mainW, y, main, boldFace)
	drawText(canvas, centsColX+6, y, "."+cents, smallFace)
}

func drawSignatures(canvas *image.RGBA, doc Document, height int) {
	n := len(doc.Signatures)
	if n == 0 {
		return
	}
	slotW := (BaseWidth - 2*marginX) / n
	baseY := height - marginY - 2*lineHeight

	for i, sig := range doc.Signatures {
		x := marginX + i*slotW
		lineW := slotW - 48

		if sig.ImageDataURL != "" {
			if img, err := DecodeDataURL(sig.ImageDataURL); err == nil {
				dst := image.Rect(x+(lineW-signatureImW)/2, baseY-signatureImH-4,
					x+(lineW-signatureImW)/2+signatureImW, baseY-4)
				xdraw.ApproxBiLinear.Scale(canvas, dst, img, img.Bounds(), xdraw.Over, nil)
			}
		}

		hline(canvas, x, x+lineW, baseY)
		nameW := textWidth(sig.Name, bodyFace)
		drawText(canvas, x+(lineW-nameW)/2, baseY+16, sig.Name, bodyFace)
		caption := sig.Caption
		if sig.Date != "" {
			caption += " - " + sig.Date
		}
		capW := textWidth(caption, smallFace)
		drawText(canvas, x+(lineW-capW)/2, baseY+34, caption, smallFace)
	}
}

func drawText(dst *image.RGBA, x, y int, s string, face font.Face) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

func hline(dst *image.RGBA, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		dst.Set(x, y, color.Black)
	}
}

func scaleBy(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
