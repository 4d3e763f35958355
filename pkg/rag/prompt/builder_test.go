package prompt

import (
	"strings"
	"testing"

	ragcontext "sales-assistant-bot/pkg/rag/context"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	comp := ragcontext.Composition{
		Products: "### INFORMACIÓN DE BASE DE DATOS\n\nPRODUCTO 1:\nCódigo: LP-01\n",
		Catalog:  "\n### INFORMACIÓN ADICIONAL DEL CATÁLOGO PDF\nGarantía de 1 año",
	}

	p := Build("laptop menos de 3000", comp)

	assert.True(t, strings.HasPrefix(p, "### CONSULTA DEL USUARIO\n\"laptop menos de 3000\"\n\n### INFORMACIÓN DE BASE DE DATOS"))
	assert.Less(t, strings.Index(p, "PRODUCTO 1:"), strings.Index(p, "Garantía de 1 año"))
	assert.Less(t, strings.Index(p, "Garantía de 1 año"), strings.Index(p, "### OBJETIVO"))
	assert.Contains(t, p, "Máximo 250 palabras en total")
	assert.Contains(t, p, "NO incluyas URLs de imágenes")
}
