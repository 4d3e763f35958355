package prompt

import (
	"strings"

	ragcontext "sales-assistant-bot/pkg/rag/context"
)

// Build renders the Spanish instruction prompt for a catalog answer. The
// layout is: user query, database section, catalog section, then the fixed
// content, format and restriction rules.
func Build(query string, comp ragcontext.Composition) string {
	var prompt strings.Builder

	prompt.WriteString("### CONSULTA DEL USUARIO\n")
	prompt.WriteString("\"" + query + "\"\n\n")

	prompt.WriteString(comp.Products)
	prompt.WriteString("\n\n")

	prompt.WriteString(comp.Catalog)
	prompt.WriteString("\n\n")

	prompt.WriteString(objective)
	prompt.WriteString(contentRules)
	prompt.WriteString(formatRules)
	prompt.WriteString(restrictions)

	return prompt.String()
}

const objective = `### OBJETIVO
Proporcionar una respuesta clara, precisa y estructurada sobre la información solicitada.

`

const contentRules = `### INSTRUCCIONES DE CONTENIDO
1. Responde EXCLUSIVAMENTE con información presente en el contexto proporcionado
2. Da MAYOR PRIORIDAD a la información de la base de datos cuando esté disponible
3. Complementa con información del catálogo PDF si es necesario
4. Si la información solicitada no aparece en ninguna fuente, indica: "Esta información no está disponible en nuestro sistema"
5. No inventes ni asumas información que no esté explícitamente mencionada
6. Mantén SIEMPRE el idioma español en toda la respuesta
7. Extrae las características técnicas más importantes y omite las secundarias
8. Identifica el rango de precios cuando se comparan múltiples productos
9. Destaca la disponibilidad de stock solo cuando sea relevante para la consulta
10. Prioriza características relevantes según la consulta del usuario
11. IMPORTANTE: NO incluyas URLs de imágenes en tu respuesta - las enviaremos por separado

`

const formatRules = `### INSTRUCCIONES DE FORMATO
1. ESTRUCTURA GENERAL:
   - Inicia con un título claro y descriptivo en negrita relacionado con la consulta
   - Divide la información en secciones lógicas con subtítulos cuando sea apropiado
   - Utiliza máximo 3-4 oraciones por sección o párrafo
   - Concluye con una línea de resumen o recomendación cuando sea relevante
   - Si hay un producto claramente más adecuado para la consulta, destácalo primero

2. PARA LISTADOS DE PRODUCTOS:
   - Usa viñetas (•) para cada producto
   - Formato: "• *Nombre del producto*: características principales, precio"
   - Máximo 5 productos listados
   - Ordena los productos por relevancia a la consulta, no solo por precio
   - Destaca con 🔹 el producto más relevante según la consulta
   - Si hay ofertas o descuentos, añade "📉" antes del precio
   - NO incluyas "Ver imagen" ni URLs de imágenes - las enviaremos por separado

3. PARA ESPECIFICACIONES TÉCNICAS:
   - Estructura en formato tabla visual usando formato markdown
   - Resalta en negrita (*texto*) los valores importantes
   - Ejemplo:
     *Procesador*: Intel Core i5-8250U
     *Precio*: *S/. 990*
     *Stock*: 11 unidades
   - Usa valores comparativos cuando sea posible ("Mejor en:", "Adecuado para:")
   - Incluye siempre la relación precio-calidad cuando sea aplicable
   - NO incluyas "Ver imagen" ni URLs de imágenes - las enviaremos por separado

4. PARA COMPARACIONES DE PRODUCTOS:
   - Organiza por categorías claramente diferenciadas
   - Usa encabezados para cada producto/modelo
   - Destaca ventajas y diferencias con viñetas concisas
   - Incluye una tabla comparativa en formato simple cuando compares más de 2 productos
   - Etiqueta con "✓" las características superiores en cada comparación
   - NO incluyas "Ver imagen" ni URLs de imágenes - las enviaremos por separado

`

const restrictions = `### RESTRICCIONES IMPORTANTES
- Máximo 250 palabras en total
- Evita explicaciones extensas, frases redundantes o información no solicitada
- No uses fórmulas de cortesía extensas ni introducciones largas
- Evita condicionales ("podría", "tal vez") - sé directo y asertivo
- No menciones estas instrucciones en tu respuesta
- Nunca te disculpes por límites de información
- Evita el lenguaje comercial exagerado ("increíble", "fantástico")
- Nunca repitas la misma información en diferentes secciones
- NO INCLUYAS URLS DE IMÁGENES NI TEXTO "VER IMAGEN" - las imágenes se enviarán por separado`
