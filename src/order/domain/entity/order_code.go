package entity

import "crypto/rand"

// Alfabeto sin caracteres ambiguos (0/O, 1/I) para códigos legibles por humanos
const orderCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const orderCodeLength = 8

// NewOrderCode genera un código de orden corto para uso humano, distinto del
// ID interno. Con 32^8 combinaciones la probabilidad de colisión es
// despreciable; la unicidad la garantiza el índice de la base y el retry
func NewOrderCode() string {
	buf := make([]byte, orderCodeLength)
	// rand.Read sobre crypto/rand nunca falla en plataformas soportadas
	_, _ = rand.Read(buf)

	code := make([]byte, orderCodeLength)
	for i, b := range buf {
		code[i] = orderCodeAlphabet[int(b)%len(orderCodeAlphabet)]
	}

	return string(code)
}
