package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/varejo-api/internal/domain/entity"
)

// GroupRef aceita as três formas de referência ao grupo de venda presentes em
// payloads antigos: string pura, objeto com id e objeto com _id.
func TestGroupRef_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"string pura", `"abc-123"`, "abc-123"},
		{"objeto com id", `{"id": "abc-123"}`, "abc-123"},
		{"objeto com _id", `{"_id": "abc-123"}`, "abc-123"},
		{"objeto com id e _id prefere id", `{"id": "novo", "_id": "legado"}`, "novo"},
		{"null degrada para vazio", `null`, ""},
		{"objeto sem id degrada para vazio", `{"nome": "x"}`, ""},
		{"forma desconhecida degrada para vazio", `[1, 2]`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g entity.GroupRef
			require.NoError(t, json.Unmarshal([]byte(tc.in), &g))
			assert.Equal(t, tc.want, g.String())
		})
	}
}

func TestInstallment_IsDownPayment(t *testing.T) {
	entrada := &entity.Installment{InstallmentNumber: entity.DownPaymentNumber}
	assert.True(t, entrada.IsDownPayment())

	regular := &entity.Installment{InstallmentNumber: 1}
	assert.False(t, regular.IsDownPayment())
}
