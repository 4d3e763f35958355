package response

// User-facing texts of the answer generator.
const (
	AnswerPrefix      = "📚 *Información del Producto*\n\n"
	MsgMalformed      = "❌ No se pudo procesar la respuesta de Gemini."
	MsgStatusTemplate = "❌ Error al consultar Gemini: %d"
	MsgUnavailable    = "❌ Error al procesar tu consulta. Intenta nuevamente en unos momentos."
)
