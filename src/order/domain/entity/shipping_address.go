package entity

import "fmt"

// ShippingAddress representa la dirección de envío estructurada.
// Los cinco campos son obligatorios
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Validate verifica que todos los campos estén poblados
func (a ShippingAddress) Validate() error {
	fields := map[string]string{
		"street":      a.Street,
		"city":        a.City,
		"region":      a.Region,
		"postal_code": a.PostalCode,
		"country":     a.Country,
	}

	for _, name := range []string{"street", "city", "region", "postal_code", "country"} {
		if fields[name] == "" {
			return fmt.Errorf("%w: %s", ErrMissingAddressField, name)
		}
	}

	return nil
}
