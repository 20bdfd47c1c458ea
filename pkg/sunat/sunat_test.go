package sunat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticketera/pkg/sunat"
)

func TestDocumentTitle_SeriePorPrefijo(t *testing.T) {
	assert.Equal(t, sunat.TitleFactura, sunat.DocumentTitle("F001-000123"))
	assert.Equal(t, sunat.TitleFactura, sunat.DocumentTitle("f001-9"))
	assert.Equal(t, sunat.TitleBoleta, sunat.DocumentTitle("B001-000045"))
	assert.Equal(t, sunat.TitleBoleta, sunat.DocumentTitle(""))
	assert.Equal(t, sunat.DocumentTypeFactura, sunat.DocumentTypeCode("F001-1"))
	assert.Equal(t, sunat.DocumentTypeBoleta, sunat.DocumentTypeCode("B001-1"))
}

func TestIdentityLabel_PorLongitud(t *testing.T) {
	cases := map[string]string{
		"20123456789": "RUC",
		"12345678":    "DNI",
		"X12345":      "CE",
		"":            "",
		"N/A":         "",
		"---":         "",
	}
	for id, want := range cases {
		assert.Equal(t, want, sunat.IdentityLabel(id), "documento %q", id)
	}
	assert.Equal(t, sunat.IdentityRUC, sunat.IdentityCode("20123456789"))
	assert.Equal(t, "", sunat.IdentityCode(""))
}

func TestJoinPresent_OmiteMarcadores(t *testing.T) {
	assert.Equal(t, "Av. Lima 123 - Miraflores", sunat.JoinPresent("Av. Lima 123", "-", "Miraflores", "N/A"))
	assert.Equal(t, "", sunat.JoinPresent("N/A", "", "--"))
}

func TestValidateRUC_DigitoVerificador(t *testing.T) {
	require.NoError(t, sunat.ValidateRUC("20100070970"))
	require.NoError(t, sunat.ValidateRUC("20131312955"))
	assert.Error(t, sunat.ValidateRUC("20131312954"), "dígito incorrecto")
	assert.Error(t, sunat.ValidateRUC("12345678"), "longitud incorrecta")
}
