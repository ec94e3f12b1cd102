package internal

type Category string

const (
	CategoryBox          Category = "caixa"
	CategoryDoorsFronts  Category = "portas_frentes"
	CategoryHandles      Category = "puxadores"
	CategoryGlassDoor    Category = "porta_vidro"
	CategoryHardware     Category = "ferragens"
	CategoryPanels       Category = "paineis"
	CategoryGlass        Category = "vidros"
	CategoryAccessories  Category = "acessorios"
	CategoryMetalwork    Category = "serralheria"
	CategoryPassageDoors Category = "portas_passagem"

	// CategoryContext is not a destination: values of fields mapped here are
	// remembered as the run's context value instead of being stored.
	CategoryContext Category = "contexto"
)

type HardwareKind string

const (
	HardwareDobradica HardwareKind = "dobradica"
	HardwareCorredica HardwareKind = "corredica"
)

type InputKind string

const (
	InputAuto  InputKind = "auto"
	InputText  InputKind = "text"
	InputHTML  InputKind = "html"
	InputPDF   InputKind = "pdf"
	InputEmail InputKind = "eml"
	InputXLSX  InputKind = "xlsx"
)

// Record is one field line: the active section, the trimmed label and every
// comma-separated value of the line.
type Record struct {
	Section string
	Field   string
	Values  []string
}

type UnknownItem struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Section string `json:"section"`
}
