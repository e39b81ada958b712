package service

// QRCodeService renders product labels as QR code images.
type QRCodeService interface {
	// GenerateProductLabel returns a PNG QR code that encodes the public product URL.
	GenerateProductLabel(productID int64) ([]byte, error)

	// ProductURL returns the URL encoded into the label of productID.
	ProductURL(productID int64) string
}
