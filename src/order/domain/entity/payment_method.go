package entity

// PaymentMethod representa el método de pago elegido al crear la orden.
// Es un enum cerrado: la integración con la pasarela es responsabilidad
// del colaborador externo, la orden solo registra método y referencia
type PaymentMethod string

const (
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodCash           PaymentMethod = "CASH"
	PaymentMethodCardGateway    PaymentMethod = "CARD_GATEWAY"
)

// IsValid indica si el método de pago es uno de los reconocidos
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCashOnDelivery, PaymentMethodCreditCard,
		PaymentMethodPayPal, PaymentMethodCash, PaymentMethodCardGateway:
		return true
	}
	return false
}

// ParsePaymentMethod valida y convierte un string a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
