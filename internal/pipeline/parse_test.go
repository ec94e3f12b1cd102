package pipeline

import (
	"reflect"
	"testing"

	"promob/internal"
)

func TestParseBoxColors(t *testing.T) {
	res := Parse("Cozinhas\n- Caixas: Branco TX, Preto TX\n")
	got := res.Store.Box().Values("Cores")
	want := []string{"Branco TX", "Preto TX"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if len(res.Unknown) != 0 {
		t.Fatalf("unknown=%v", res.Unknown)
	}
}

func TestParseUnknownField(t *testing.T) {
	res := Parse("Cozinhas\n- Puxador Exótico: ModeloX\n")
	want := []internal.UnknownItem{{Field: "Puxador Exótico", Value: "ModeloX", Section: "Cozinhas"}}
	if !reflect.DeepEqual(res.Unknown, want) {
		t.Fatalf("got %+v want %+v", res.Unknown, want)
	}
}

func TestParseUnknownOnePerValueInOrder(t *testing.T) {
	res := Parse("- Lâmpada: LED, Spot\nSala\n- Tomada: 10A\n")
	want := []internal.UnknownItem{
		{Field: "Lâmpada", Value: "LED", Section: "Unknown"},
		{Field: "Lâmpada", Value: "Spot", Section: "Unknown"},
		{Field: "Tomada", Value: "10A", Section: "Sala"},
	}
	if !reflect.DeepEqual(res.Unknown, want) {
		t.Fatalf("got %+v want %+v", res.Unknown, want)
	}
}

func TestMappedFieldsNeverUnknown(t *testing.T) {
	for field := range fieldMapping {
		res := &Result{Store: NewStore()}
		res.Classify(internal.Record{Section: "S", Field: field, Values: []string{"Valor A", "Valor B"}})
		if len(res.Unknown) != 0 {
			t.Fatalf("field %q produced unknown items %+v", field, res.Unknown)
		}
	}
}

func TestParseContextLastWins(t *testing.T) {
	res := Parse("- Puxador Perfil Rometal: Cielo\n- Puxador Perfil Rometal: Aura, Zenit\n")
	if res.Context != "Zenit" {
		t.Fatalf("context=%q", res.Context)
	}
	if len(res.Store.Categories()) != 0 {
		t.Fatalf("context value leaked into store: %v", res.Store.Categories())
	}
}

func TestParseUnlabeledGoesToItems(t *testing.T) {
	res := Parse("- Painéis: Freijó\n- Tampos: Branco\n")
	want := []string{"Branco", "Freijó"}
	if got := res.Store.Panels().Values(ItemsBucket); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if res.Store.Panels().Has(unlabeledSub) {
		t.Fatal("sentinel subcategory stored")
	}
}

func TestParseGlassIsFlat(t *testing.T) {
	res := Parse("- Vidros: Incolor, Reflecta, Incolor\n")
	if got := res.Store.Glass(); !reflect.DeepEqual(got, []string{"Incolor", "Reflecta"}) {
		t.Fatalf("got %v", got)
	}
	if res.Store.GlassDoor() != nil {
		t.Fatal("glass door category should stay absent")
	}
}

func TestParseTracksHardware(t *testing.T) {
	res := Parse(`- Dobradiça: Blum\Clip Top, FGV` + "\n- Corrediça: Telescópica\n")
	if got := res.Hardware.Found(internal.HardwareDobradica); !reflect.DeepEqual(got, []string{"Blum Clip Top", "FGV"}) {
		t.Fatalf("dobradicas=%v", got)
	}
	if got := res.Hardware.Found(internal.HardwareCorredica); !reflect.DeepEqual(got, []string{"Telescópica"}) {
		t.Fatalf("corredicas=%v", got)
	}
	if got := res.Store.Hardware().Values(subDobradica); len(got) != 2 {
		t.Fatalf("hardware store=%v", got)
	}
}

func TestParseDropsEmptyCleanedValues(t *testing.T) {
	res := Parse(`- Portas: MDF\` + "\n")
	if res.Store.DoorsFronts() != nil {
		t.Fatalf("empty value created category: %v", res.Store.DoorsFronts())
	}
	if res.Records != 1 {
		t.Fatalf("records=%d", res.Records)
	}
}

func TestParseAbsentCategoriesStayNil(t *testing.T) {
	res := Parse("- Caixas: Branco\n")
	if got := res.Store.Categories(); !reflect.DeepEqual(got, []internal.Category{internal.CategoryBox}) {
		t.Fatalf("categories=%v", got)
	}
	if res.Store.Handles() != nil || res.Store.Buckets(internal.CategoryContext) != nil {
		t.Fatal("unexpected buckets")
	}
}

func TestStoreAddRejectsNonDestinations(t *testing.T) {
	s := NewStore()
	if s.Add(internal.CategoryContext, "", "x") {
		t.Fatal("context category accepted a value")
	}
	if s.Add(internal.CategoryBox, "Cores", "") {
		t.Fatal("empty value accepted")
	}
}

func TestParsePassageDoorHandlesAndAccessories(t *testing.T) {
	res := Parse("- Puxador Externo: Roseta\n- Acab. Interno: Freijó\n- Cabideiro Vesto: Oval\n- Alternativa: Sapateira\n")

	if got := res.Store.PassageDoors().Values("Puxador Externo"); !reflect.DeepEqual(got, []string{"Roseta"}) {
		t.Fatalf("passage doors=%v", got)
	}
	if got := res.Store.PassageDoors().Values("Acabamento Interno"); !reflect.DeepEqual(got, []string{"Freijó"}) {
		t.Fatalf("passage doors=%v", got)
	}
	if res.Store.Handles() != nil {
		t.Fatalf("handles=%v", res.Store.Handles())
	}
	if got := res.Store.Accessories().Subcategories(); !reflect.DeepEqual(got, []string{"Alternativa", "Cabideiro"}) {
		t.Fatalf("accessories=%v", got)
	}
}
