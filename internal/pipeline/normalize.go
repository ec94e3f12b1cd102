package pipeline

import (
	"regexp"
	"strings"
)

const (
	doorTypeField  = "Portas"
	pathSeparator  = `\`
	woodProCatalog = "Wood Pro"
	mdfColorsGroup = "MDF Cores"
)

var reDoorMaterialPrefix = regexp.MustCompile(`^(MDF|Alumínio|Aluminio)\\`)

// CleanValue rewrites a raw exported value into its report form. The result
// may be empty, in which case the value is not stored.
func CleanValue(value, field string) string {
	if field == doorTypeField {
		value = reDoorMaterialPrefix.ReplaceAllString(value, "")
	}

	if rewritten, ok := rewriteColorPath(value); ok {
		return rewritten
	}

	if strings.Contains(value, pathSeparator) && strings.Contains(value, woodProCatalog) {
		parts := strings.Split(value, pathSeparator)
		return strings.TrimSpace(parts[len(parts)-1])
	}

	value = strings.ReplaceAll(value, pathSeparator, " ")
	return strings.TrimSpace(value)
}

// rewriteColorPath handles "Brand Cor>Name" style color references:
// "MDF Cores>Preto" becomes "MDF Preto", "Duratex Cor>Branco" becomes
// "MDF Duratex Branco".
func rewriteColorPath(value string) (string, bool) {
	parts := strings.Split(value, ">")
	if len(parts) != 2 {
		return "", false
	}
	prefix := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])

	if prefix == mdfColorsGroup {
		return strings.TrimSpace("MDF " + name), true
	}
	if strings.Contains(prefix, "Cor") || strings.Contains(prefix, "Madeirado") {
		brand := strings.ReplaceAll(prefix, " Cor", "")
		brand = strings.ReplaceAll(brand, " Madeirado", "")
		brand = strings.TrimSpace(brand)
		return strings.TrimSpace("MDF " + brand + " " + name), true
	}
	return "", false
}
