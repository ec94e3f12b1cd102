package pipeline

import "promob/internal"

const (
	fieldMarker    = "-"
	unknownSection = "Unknown"

	// unlabeledSub marks table entries whose values render without a heading.
	unlabeledSub = "main"
	// ItemsBucket is where unlabeled values are stored.
	ItemsBucket = "items"

	contextMatch = "Rometal"
)

type fieldTarget struct {
	Category    internal.Category
	Subcategory string
}

var ignoredSections = map[string]struct{}{
	"Decore":              {},
	"Componentes Avulsos": {},
	"Montagem":            {},
}

var environmentSections = map[string]struct{}{
	"Cozinhas":    {},
	"Dormitórios": {},
	"Sala":        {},
	"Banheiros":   {},
	"Lavanderia":  {},
	"Escritório":  {},
	"FGVTN":       {},
}

var skippedFields = map[string]struct{}{
	"Fita de Borda":                   {},
	"Fita Caixas":                     {},
	"Fita de Borda Portas/Frentes":    {},
	"Fita Frontal":                    {},
	"Fita Prateleira":                 {},
	"Fita Corpos de Gaveta":           {},
	"Fita de Borda Tampo":             {},
	"Fita de Borda Ld Externo":        {},
	"Fita de Borda Ld Interno":        {},
	"Fita de Borda Frentes Internas":  {},
	"Fita Ripas":                      {},
	"Tipo de Fundo":                   {},
	"Tipo de Fundo Despenseiro":       {},
	"Tipo de Fundo Superiores":        {},
	"Tipo de Fundo Armários de Canto": {},
	"Tipo Fundo Inferior":             {},
	"Modelo s/ Rodapé":                {},
	"Gaveta Externa":                  {},
}

// Puxador Externo/Interno belong to passage doors only; the handles section
// keeps the profile and metallic handle fields.
var fieldMapping = map[string]fieldTarget{
	"Caixas":                  {internal.CategoryBox, "Cores"},
	"Corpo de Gavetas":        {internal.CategoryBox, "Corpo de Gavetas"},
	"Frente Gaveta Interna":   {internal.CategoryBox, "Frente Gaveta Interna"},
	"Frente de Gaveta Criado": {internal.CategoryBox, "Frente de Gaveta Criado"},
	"Base Estrutural":         {internal.CategoryBox, "Base Estrutural"},
	"Modelo Interno Canto L":  {internal.CategoryBox, "Modelo Interno Canto L"},
	"Modelo Interno":          {internal.CategoryBox, "Modelo Interno"},

	"Portas":                 {internal.CategoryDoorsFronts, "Tipos"},
	"Acab. Portas/Frentes":   {internal.CategoryDoorsFronts, "Acabamentos"},
	"Acab. Frentes Internas": {internal.CategoryDoorsFronts, "Frentes Internas"},
	"Miolo Porta":            {internal.CategoryDoorsFronts, "Miolo Porta"},
	"Basculantes":            {internal.CategoryDoorsFronts, "Tipos"},

	"Puxador Perfil":         {internal.CategoryHandles, unlabeledSub},
	"Puxador Perfil Rometal": {internal.CategoryContext, ""},
	"Acab Puxador":           {internal.CategoryHandles, "Acabamento Puxador"},
	"Acab Pux Externo":       {internal.CategoryHandles, "Acabamento Puxador"},
	"Acab Pux Interno":       {internal.CategoryHandles, "Acabamento Puxador"},
	"Puxadores Metálicos":    {internal.CategoryHandles, "Obispa"},
	"Puxadores":              {internal.CategoryHandles, "Obispa"},

	"Porta Perfil":   {internal.CategoryGlassDoor, "Porta Perfil"},
	"Perfil Rometal": {internal.CategoryGlassDoor, "Perfil Rometal"},
	"Puxador":        {internal.CategoryGlassDoor, "Puxador"},
	"Vidros":         {internal.CategoryGlass, ""},

	"Dobradiça": {internal.CategoryHardware, subDobradica},
	"Corrediça": {internal.CategoryHardware, subCorredica},
	"Fechadura": {internal.CategoryHardware, "Fechadura"},

	"Painéis": {internal.CategoryPanels, unlabeledSub},
	"Tampos":  {internal.CategoryPanels, unlabeledSub},
	"Ripas":   {internal.CategoryPanels, "Ripas"},

	"Cabideiro":       {internal.CategoryAccessories, "Cabideiro"},
	"Cabideiro Vesto": {internal.CategoryAccessories, "Cabideiro"},
	"Alternativa":     {internal.CategoryAccessories, "Alternativa"},

	"Metalon": {internal.CategoryMetalwork, "Metalon"},

	"Acab. Interno":   {internal.CategoryPassageDoors, "Acabamento Interno"},
	"Acab. Externo":   {internal.CategoryPassageDoors, "Acabamento Externo"},
	"Puxador Externo": {internal.CategoryPassageDoors, "Puxador Externo"},
	"Puxador Interno": {internal.CategoryPassageDoors, "Puxador Interno"},
}

const (
	subDobradica = "Dobradiça"
	subCorredica = "Corrediça"
)

var trackedFields = map[string]internal.HardwareKind{
	"Dobradiça": internal.HardwareDobradica,
	"Corrediça": internal.HardwareCorredica,
}

type sectionLayout struct {
	Title    string
	Category internal.Category
	Order    []string
}

var reportLayout = []sectionLayout{
	{Title: "CAIXA", Category: internal.CategoryBox, Order: []string{"Cores", "Base Estrutural", "Corpo de Gavetas"}},
	{Title: "PORTAS / FRENTES", Category: internal.CategoryDoorsFronts, Order: []string{"Tipos", "Acabamentos", "Frentes Internas", "Miolo Porta"}},
	{Title: "PUXADORES", Category: internal.CategoryHandles, Order: []string{"Acabamento Puxador", "Obispa"}},
	{Title: "PORTA DE VIDRO", Category: internal.CategoryGlassDoor, Order: []string{"Porta Perfil", "Perfil Rometal", "Puxador"}},
	{Title: "FERRAGENS", Category: internal.CategoryHardware, Order: []string{subDobradica, subCorredica}},
	{Title: "PAINÉIS / TAMPOS / TAMPONAMENTOS", Category: internal.CategoryPanels, Order: []string{"Ripas"}},
	{Title: "ACESSÓRIOS", Category: internal.CategoryAccessories},
	{Title: "SERRALHERIA", Category: internal.CategoryMetalwork},
	{Title: "PORTAS DE PASSAGEM", Category: internal.CategoryPassageDoors, Order: []string{"Acabamento Externo", "Acabamento Interno", "Puxador Externo", "Puxador Interno"}},
}

// sidePair folds an external/internal couple of subcategories into one line.
type sidePair struct {
	Label    string
	External string
	Internal string
}

var passageDoorPairs = []sidePair{
	{Label: "Acabamento", External: "Acabamento Externo", Internal: "Acabamento Interno"},
	{Label: "Puxador", External: "Puxador Externo", Internal: "Puxador Interno"},
}

const glassHeading = "Vidros"
