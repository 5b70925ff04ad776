package request

// ConfirmPaymentRequest representa la confirmación de pago con la referencia
// del sistema externo (comprobante, id de transacción)
type ConfirmPaymentRequest struct {
	Reference string `json:"reference"`
}
