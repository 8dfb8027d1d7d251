package voucherimg

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/abicrealty/voucher-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		Kind:           "CASH VOUCHER",
		CompanyName:    "ABIC Realty & Consultancy Corporation",
		CompanyAddress: "Makati City, Philippines",
		Number:         "CV-100234-0001",
		Fields: []Field{
			{Label: "Paid to", Value: "Acme Supplies"},
			{Label: "Date", Value: "2024-01-01"},
		},
		Rows: []Row{
			{Description: "Office rent", Amount: money.Format(500)},
			{Description: "Utilities", Amount: money.Format(1234.5)},
		},
		Total: money.Format(1734.5),
		Signatures: []SignatureBlock{
			{Name: "J Doe", Caption: "Received by", Date: "2024-01-01"},
			{Name: "A Boss", Caption: "Approved by", Date: "2024-01-02"},
		},
	}
}

func TestRenderProducesInk(t *testing.T) {
	img := Render(sampleDocument())
	require.NotNil(t, img)

	b := img.Bounds()
	assert.Equal(t, BaseWidth*Density, b.Dx())
	assert.GreaterOrEqual(t, b.Dy(), MinHeight*Density)
	assert.False(t, IsBlank(img))
}

func TestRenderJPEG(t *testing.T) {
	data, err := RenderJPEG(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, BaseWidth*Density, img.Bounds().Dx())
}

func TestIsBlank(t *testing.T) {
	white := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(white, white.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	assert.True(t, IsBlank(white))

	white.Set(0, 0, color.Black)
	assert.False(t, IsBlank(white))
}

func TestDecodeDataURL(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	// With and without the data: prefix
	img, err := DecodeDataURL("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	img, err = DecodeDataURL(payload)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = DecodeDataURL("")
	assert.Error(t, err)

	_, err = DecodeDataURL("data:image/png;base64,not-base64!!!")
	assert.Error(t, err)
}

func TestRenderSignatureImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	doc := sampleDocument()
	doc.Signatures[0].ImageDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	data, err := RenderJPEG(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// A broken signature image leaves the slot blank but never fails the export
	doc.Signatures[0].ImageDataURL = "data:image/png;base64,garbage"
	data, err = RenderJPEG(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
