package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the order receipt.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID uuid.UUID) ([]byte, error) {
	return qrcode.Encode(g.ReceiptURL(orderID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) ReceiptURL(orderID uuid.UUID) string {
	return strings.TrimRight(g.BaseURL, "/") + "/api/orders/" + orderID.String()
}
