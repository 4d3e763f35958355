package conversation

const (
	MsgQueryMode = "🔍 *Modo Consulta al Catálogo y Base de Datos*\n\n" +
		"Ahora puedes hacer preguntas sobre nuestros productos.\n" +
		"Consultaremos primero nuestra base de datos y luego el catálogo PDF.\n" +
		"Para volver al menú principal, escribe *salir* o *menu*."
	MsgExitQueryMode = "✅ Has salido del modo consulta. Volviendo al menú principal..."
	MsgSearching     = "🔍 Consultando base de datos y catálogo con Gemini AI. Esto puede tomar un momento..."
	MsgExitHint      = "\n\n_Para salir de este modo escribe *salir* o *menu*_"
	MsgInvalidOption = "⚠️ Opción no válida. Por favor, selecciona una de las opciones del menú."
)

// Typed by the user, always matched as whole words.
var activationCommands = map[string]struct{}{
	"!start": {}, "hola": {}, "consulta": {}, "inicio": {}, "comenzar": {},
	"ayuda": {}, "start": {}, "hi": {}, "hello": {},
}

// Leave query mode; the whole message must be the command.
var exitCommands = map[string]struct{}{
	"salir": {}, "exit": {}, "menu": {}, "volver": {}, "regresar": {},
	"terminar": {}, "finalizar": {}, "!menu": {}, "!start": {},
}

// Ignored while idle so a stray exit does not trigger "invalid option".
var idleSilentCommands = map[string]struct{}{
	"menu": {}, "salir": {},
}

const queryOption = "4"
