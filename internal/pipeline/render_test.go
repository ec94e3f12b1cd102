package pipeline

import (
	"slices"
	"strings"
	"testing"

	"promob/internal"
)

func TestRenderBoxScenario(t *testing.T) {
	res := Parse("Cozinhas\n- Caixas: Preto TX, Branco TX\n")
	got := Render(res, Overrides{}).Text()
	want := "CAIXA\n\nCores:\nBranco TX\nPreto TX"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderContextPrefix(t *testing.T) {
	text := "Seção\n- Puxador Perfil Rometal: Cielo\n- Puxador Perfil: Puxador Rometal Linear, Cava Usinada\n"
	got := Render(Parse(text), Overrides{}).Text()
	want := "PUXADORES\n\nCava Usinada\nCielo - Puxador Rometal Linear"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderContextDoesNotMutateStore(t *testing.T) {
	res := Parse("- Puxador Perfil Rometal: Cielo\n- Puxador Perfil: Puxador Rometal Linear\n")
	_ = Render(res, Overrides{})
	if got := res.Store.Handles().Values(ItemsBucket); got[0] != "Puxador Rometal Linear" {
		t.Fatalf("store changed: %v", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	res := Parse(sampleExport)
	ov := Overrides{Dobradica: []string{"Blum Clip Top Blumotion"}}
	first := Render(res, ov).Text()
	second := Render(res, ov).Text()
	if first != second {
		t.Fatalf("outputs differ:\n%s\n---\n%s", first, second)
	}
}

func TestRenderSectionOrderAndSuppression(t *testing.T) {
	text := "- Metalon: Preto 20x20\n- Caixas: Branco\n- Cabideiro: Oval\n"
	report := Render(Parse(text), Overrides{})
	titles := []string{}
	for _, s := range report.Sections {
		titles = append(titles, s.Title)
	}
	want := []string{"CAIXA", "ACESSÓRIOS", "SERRALHERIA"}
	if !slices.Equal(titles, want) {
		t.Fatalf("titles=%v want %v", titles, want)
	}
}

func TestRenderSubcategoryOrder(t *testing.T) {
	text := "- Modelo Interno: Padrão\n- Corpo de Gavetas: Branco\n- Caixas: Cinza\n- Frente Gaveta Interna: Branco\n"
	report := Render(Parse(text), Overrides{})
	headings := []string{}
	for _, g := range report.Sections[0].Groups {
		headings = append(headings, g.Heading)
	}
	want := []string{"Cores", "Corpo de Gavetas", "Frente Gaveta Interna", "Modelo Interno"}
	if !slices.Equal(headings, want) {
		t.Fatalf("headings=%v want %v", headings, want)
	}
}

func TestRenderItemsFirstWithoutHeading(t *testing.T) {
	text := "- Ripas: Freijó\n- Painéis: Branco, Amadeirado\n"
	got := Render(Parse(text), Overrides{}).Text()
	want := "PAINÉIS / TAMPOS / TAMPONAMENTOS\n\nAmadeirado\nBranco\n\nRipas:\nFreijó"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderValuesSorted(t *testing.T) {
	res := Parse("- Acab. Portas/Frentes: b, B, a, Á, 10, 9\n")
	for _, section := range Render(res, Overrides{}).Sections {
		for _, g := range section.Groups {
			if !slices.IsSorted(g.Lines) {
				t.Fatalf("group %q not sorted: %v", g.Heading, g.Lines)
			}
		}
	}
}

func TestRenderOverridesReplaceParsed(t *testing.T) {
	text := "- Dobradiça: Hettich, FGV, Blum\n- Corrediça: Telescópica\n- Fechadura: Tetra\n"
	ov := Overrides{Dobradica: []string{"Zeta", "Alfa"}}
	got := Render(Parse(text), ov).Text()
	want := "FERRAGENS\n\nDobradiça:\nZeta\nAlfa\n\nCorrediça:\nTelescópica\n\nFechadura:\nTetra"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderOverridesWithoutParsedHardware(t *testing.T) {
	ov := Overrides{Dobradica: []string{"Blum Clip Top Blumotion"}, Corredica: []string{"Quadro/Invisível"}}
	got := Render(Parse("- Caixas: Branco\n"), ov).Text()
	want := "CAIXA\n\nCores:\nBranco\n\nFERRAGENS\n\nDobradiça:\nBlum Clip Top Blumotion\n\nCorrediça:\nQuadro/Invisível"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderOverrideCopiesCallerList(t *testing.T) {
	list := []string{"Blum"}
	report := Render(Parse(""), Overrides{Dobradica: list})
	report.Sections[0].Groups[0].Lines[0] = "changed"
	if list[0] != "Blum" {
		t.Fatal("caller list modified")
	}
}

func TestRenderGlassDoor(t *testing.T) {
	text := "- Vidros: Reflecta, Incolor\n- Puxador: Alça\n- Porta Perfil: Alumínio Preto\n"
	got := Render(Parse(text), Overrides{}).Text()
	want := "PORTA DE VIDRO\n\nPorta Perfil:\nAlumínio Preto\n\nPuxador:\nAlça\n\nVidros:\nIncolor\nReflecta"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderGlassOnly(t *testing.T) {
	got := Render(Parse("- Vidros: Incolor\n"), Overrides{}).Text()
	if got != "PORTA DE VIDRO\n\nVidros:\nIncolor" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPassageDoorPairs(t *testing.T) {
	text := "- Acab. Externo: Branco TX\n- Acab. Interno: Freijó, Carvalho\n- Puxador Interno: Roseta\n"
	got := Render(Parse(text), Overrides{}).Text()
	want := "PORTAS DE PASSAGEM\n\nAcabamento:\nBranco TX (Externo) / Carvalho, Freijó (Interno)\n\nPuxador:\nRoseta (Interno)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(Parse("Cozinhas\n"), Overrides{}).Text(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatUnknown(t *testing.T) {
	items := []internal.UnknownItem{{Field: "Puxador Exótico", Value: "ModeloX", Section: "Cozinhas"}}
	got := FormatUnknown(items)
	if got != "--- UNKNOWN ITEMS ---\nPuxador Exótico: ModeloX (Cozinhas)" {
		t.Fatalf("got %q", got)
	}
	if FormatUnknown(nil) != "" {
		t.Fatal("expected empty listing")
	}
}

func TestRenderSampleExport(t *testing.T) {
	got := Render(Parse(sampleExport), Overrides{}).Text()
	for _, want := range []string{
		"CAIXA\n\nCores:\nMDF Duratex Branco\nMDF Preto",
		"PORTAS / FRENTES\n\nTipos:\nLisa\nProvençal",
		"PUXADORES\n\nCielo - Puxador Rometal Linear",
		"FERRAGENS\n\nDobradiça:\nBlum Clip Top",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Ignorado") {
		t.Fatalf("ignored section rendered:\n%s", got)
	}
}

const sampleExport = `Cozinhas
- Caixas: Duratex Cor>Branco, MDF Cores>Preto
- Fita de Borda: Branco
- Portas: MDF\Lisa, Wood Pro +\Frentes\Provençal
- Puxador Perfil Rometal: Cielo
- Puxador Perfil: Puxador Rometal Linear
- Dobradiça: Blum\Clip Top
Decore
- Caixas: Ignorado
Dormitórios
- Lâmpada: LED
`
