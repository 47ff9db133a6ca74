package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalPriceValidation(t *testing.T) {
	v := newValidator()

	valid := []string{"5", "0", "99.99", "5.9", "5.999", "150.00"}
	for _, price := range valid {
		dto := OrderDetailDTO{ProductID: "LZ127", Price: price, Quantity: 1}
		assert.NoError(t, v.Struct(dto), "price %q should be accepted", price)
	}

	invalid := []string{"ninety-nine", "5.", ".5", "-5", "5,00", "5.9.9", "5 "}
	for _, price := range invalid {
		dto := OrderDetailDTO{ProductID: "LZ127", Price: price, Quantity: 1}
		assert.Error(t, v.Struct(dto), "price %q should be rejected", price)
	}
}
