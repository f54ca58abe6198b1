package similarity

// stopWords are Spanish function words ignored by the token-based metrics.
// The set is read-only after initialization and safe for concurrent use.
var stopWords = toSet([]string{
	"el", "la", "de", "del", "en", "y", "o", "para", "con", "por",
	"su", "sus", "un", "una", "los", "las", "al", "como", "desde",
	"entre", "sin", "sobre", "tras", "durante", "mediante", "cual",
	"donde", "cuando", "quien", "que", "esta", "este", "estos",
	"estas", "ese", "esa", "esos", "esas", "lo", "le", "les",
	"se", "si", "no", "ni", "ya", "tambien", "solo", "mas",
	"pero", "sino", "aunque", "porque", "pues", "asi",
	"tan", "tanto", "muy", "ser", "estar", "tener", "hacer",
	"a", "ante", "bajo", "contra", "hacia", "hasta", "segun",
})

// importantKeywords is the curated vocabulary of contract-domain terms.
// Sharing these words weighs more than sharing arbitrary vocabulary, which
// rescues matches between short purposes and long contract objects.
var importantKeywords = toSet([]string{
	"suministro", "prestacion", "construccion", "consultoria",
	"mantenimiento", "elaboracion", "produccion", "comercializacion",
	"distribucion", "transporte", "almacenamiento", "procesamiento",
	"servicio", "servicios", "obra", "obras", "proyecto", "proyectos",
	"gestion", "administracion", "asesoria", "capacitacion",
	"formacion", "educacion", "salud", "alimentos", "agricola",
	"tecnologia", "sistemas", "infraestructura", "vial", "civil",
	"pesca", "pesquero", "pesquera", "acuicultura", "agropecuario",
	"ambiental", "fortalecimiento", "cadenas", "valor", "comunidades",
	"artesanal", "piangua", "marino", "maritimo", "natural",
	"capacidad", "transferencia", "conocimiento", "tecnica",
	"buenas", "comunidad",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
