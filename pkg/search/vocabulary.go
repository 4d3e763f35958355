package search

// Categories is the fixed product vocabulary recognised in queries.
var Categories = []string{
	"laptop", "computadora", "pc", "celular", "smartphone", "tablet", "monitor",
	"impresora", "scanner", "teclado", "mouse", "audífono", "auricular", "cámara",
	"disco", "memoria", "usb", "router", "televisor", "tv",
}

var stopWords = toSet(
	"que", "cual", "cuales", "cuanto", "como", "donde", "quien", "cuando",
	"hay", "tiene", "tengan", "con", "sin", "por", "para", "entre", "los", "las",
	"uno", "una", "unos", "unas", "del", "desde", "hasta", "hacia", "durante",
	"mediante", "según", "sobre", "tras", "versus",
)

var (
	upperBoundHints = []string{"menos", "bajo", "económico", "barato"}
	lowerBoundHints = []string{"más", "encima", "mayor", "mínimo"}
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
