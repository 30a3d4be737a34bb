// internal/domain/catalog/catalogs.go
package catalog

// Fixed business catalogs. The region list and the UF mapping mirror the
// dashboard's geographic grouping; regions with no sales still report zero.
var (
	Segments   = []Segment{SegmentGold, SegmentSilver, SegmentBronze}
	Regions    = []string{"Sudeste", "Sul", "Nordeste", "Centro-Oeste", "Norte"}
	Categories = []string{"Eletrônicos", "Roupas", "Casa", "Esporte", "Livros"}
	Brands     = []string{"BrandA", "BrandB", "BrandC", "BrandD", "BrandE"}
	Personas   = []Persona{PersonaOneTime, PersonaLoyal, PersonaVIP}
	Lifecycles = []Lifecycle{LifecycleStable, LifecycleViral, LifecycleObsolete}
)

// City is a seed location customers are assigned to.
type City struct {
	Name  string
	State string
}

// Cities covers one capital per state so every region is reachable.
var Cities = []City{
	{"São Paulo", "SP"},
	{"Rio de Janeiro", "RJ"},
	{"Belo Horizonte", "MG"},
	{"Vitória", "ES"},
	{"Curitiba", "PR"},
	{"Porto Alegre", "RS"},
	{"Florianópolis", "SC"},
	{"Salvador", "BA"},
	{"Recife", "PE"},
	{"Fortaleza", "CE"},
	{"São Luís", "MA"},
	{"Natal", "RN"},
	{"Brasília", "DF"},
	{"Goiânia", "GO"},
	{"Cuiabá", "MT"},
	{"Campo Grande", "MS"},
	{"Manaus", "AM"},
	{"Belém", "PA"},
	{"Porto Velho", "RO"},
}

var ufToRegion = map[string]string{
	"AC": "Norte", "AP": "Norte", "AM": "Norte", "PA": "Norte",
	"RO": "Norte", "RR": "Norte", "TO": "Norte",
	"AL": "Nordeste", "BA": "Nordeste", "CE": "Nordeste", "MA": "Nordeste",
	"PB": "Nordeste", "PE": "Nordeste", "PI": "Nordeste", "RN": "Nordeste",
	"SE": "Nordeste",
	"DF": "Centro-Oeste", "GO": "Centro-Oeste", "MT": "Centro-Oeste",
	"MS": "Centro-Oeste",
	"ES": "Sudeste", "MG": "Sudeste", "RJ": "Sudeste", "SP": "Sudeste",
	"PR": "Sul", "RS": "Sul", "SC": "Sul",
}

// RegionForState maps a UF code to its region, defaulting to Sudeste for
// unknown codes so generated rows always land in the fixed region catalog.
func RegionForState(uf string) string {
	if r, ok := ufToRegion[uf]; ok {
		return r
	}
	return "Sudeste"
}
