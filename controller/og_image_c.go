package controller

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
	"k8s.io/klog/v2"
)

// Standard OG preview dimensions
const ogImageWidth = 1200
const ogImageHeight = 630
const ogQrSize = 380
const ogCardPadding = 40
const ogCardBorder = 3

var ogBackground = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
var ogAccent = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}

// HandleOgInviteImage renders the link-preview image for an invite: a QR
// code for the invite URL on a card, so a shared link can be joined by
// scanning the preview itself.
func (ic *InviteController) HandleOgInviteImage(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" || len(token) > maxInviteTokenLength {
		return ErrBadRequest(c, "Missing or invalid token")
	}

	inviteUrl := fmt.Sprintf("%s/invite-redirect?token=%s", strings.TrimSuffix(ic.BaseUrl, "/"), url.QueryEscape(token))
	rendered, err := buildOgInviteImage(inviteUrl)
	if err != nil {
		klog.Errorf("Error rendering invite QR image %s", err)
		return ErrInternalServerError(c, "QR generation failed")
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(rendered)
}

func buildOgInviteImage(inviteUrl string) ([]byte, error) {
	qr, err := qrcode.New(inviteUrl, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrImage := qr.Image(ogQrSize)

	canvas := image.NewRGBA(image.Rect(0, 0, ogImageWidth, ogImageHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: ogBackground}, image.Point{}, draw.Src)

	// White card with an accent border, QR code centered on it
	card := image.Rect(
		(ogImageWidth-ogQrSize)/2-ogCardPadding,
		(ogImageHeight-ogQrSize)/2-ogCardPadding,
		(ogImageWidth+ogQrSize)/2+ogCardPadding,
		(ogImageHeight+ogQrSize)/2+ogCardPadding,
	)
	draw.Draw(canvas, card, &image.Uniform{C: ogAccent}, image.Point{}, draw.Src)
	draw.Draw(canvas, card.Inset(ogCardBorder), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	qrOrigin := image.Pt((ogImageWidth-ogQrSize)/2, (ogImageHeight-ogQrSize)/2)
	draw.Draw(canvas, image.Rectangle{Min: qrOrigin, Max: qrOrigin.Add(image.Pt(ogQrSize, ogQrSize))}, qrImage, qrImage.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
