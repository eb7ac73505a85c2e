package models

// PixPayment holds the PIX payment instructions returned by the payment
// provider for an order. QRCode is the payload rendered as a QR image;
// CopyPasteCode is the "copia e cola" string shown next to it. The
// provider may return only one of the two, in which case both fields carry
// the same value.
type PixPayment struct {
	QRCode        string `bson:"qrcode" json:"qrcode"`
	CopyPasteCode string `bson:"copia_e_cola" json:"copiaECola"`
	TransactionID string `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	Status        string `bson:"status" json:"status"` // provider status, defaults to "PENDING"
}
