package menu

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const replyHint = "💬 *Responde con el número de la opción deseada.*"

// Content is the canned part of the conversation: a welcome line, the menu
// entries and the fixed answer of each option.
type Content struct {
	Welcome string            `json:"bienvenida" yaml:"bienvenida"`
	Menu    []string          `json:"menu" yaml:"menu"`
	Answers map[string]string `json:"respuestas" yaml:"respuestas"`
}

// WelcomeText is the greeting followed by the menu and a reply hint. The
// "5. Salir" entry is not advertised.
func (c Content) WelcomeText() string {
	var lines []string
	for _, option := range c.Menu {
		if strings.Contains(option, "5. Salir") {
			continue
		}
		lines = append(lines, option)
	}
	return c.Welcome + "\n\n" + strings.Join(lines, "\n") + "\n\n" + replyHint
}

func (c Content) Answer(option string) (string, bool) {
	answer, ok := c.Answers[option]
	return answer, ok
}

func (c Content) valid() bool {
	return c.Welcome != "" && len(c.Menu) > 0
}

// LoadFile reads menu content from a YAML file.
func LoadFile(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read menu file: %w", err)
	}
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if !c.valid() {
		return Content{}, fmt.Errorf("menu file %s has no welcome text or options", path)
	}
	return c, nil
}

// Default is the built-in content used whenever no menu source answers.
func Default() Content {
	return Content{
		Welcome: "✨ ¡Bienvenido al Asistente de Ventas! ✨\n🛍️ Estoy aquí para ayudarte a…",
		Menu: []string{
			"1️⃣ Consultar productos",
			"2️⃣ Ofertas especiales",
			"3️⃣ Información de envíos",
			"4️⃣ Otros (realizar pregunta personalizada)",
			"5️⃣ Salir",
		},
		Answers: map[string]string{
			"1": "📦 *Catálogo de Productos*\n\nNuestros productos están organizados en las siguientes categorías:\n- Electrónica\n- Ropa y accesorios\n- Hogar y jardín\n- Belleza y cuidado personal\n\n¿Sobre qué categoría te gustaría más información?",
			"2": "🏷️ *Ofertas Especiales*\n\n¡Tenemos increíbles descuentos esta semana!\n- 30% OFF en todos los productos de electrónica\n- 2x1 en ropa de temporada\n- Envío gratis en compras mayores a $50\n\nEstas ofertas son válidas hasta el final de mes.",
			"3": "🚚 *Información de Envíos*\n\nNuestras políticas de envío:\n- Envío estándar (3-5 días): $5.99\n- Envío express (1-2 días): $12.99\n- Envío gratuito en compras superiores a $50\n\nHacemos envíos a todo el país.",
			"4": "📚 *Consulta al catálogo*\n\nAhora puedes hacer preguntas sobre nuestro catálogo de productos. ¿Qué te gustaría saber?",
		},
	}
}
