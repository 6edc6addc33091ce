package dex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/qyinm/pokedextui/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const english = "en"

var typeSymbols = map[string]string{
	"fire": "🔥", "water": "💧", "grass": "🌿", "electric": "⚡",
	"psychic": "👁", "ice": "❄", "dragon": "🐉", "dark": "🌑",
	"fairy": "🌸", "fighting": "👊", "poison": "☠", "ground": "⛰",
	"flying": "🌀", "bug": "🐛", "rock": "🪨", "ghost": "👻",
	"steel": "⚙", "normal": "⭐",
}

// PadID formats a national dex number as #NNN
func PadID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Capitalize upper-cases the first letter only, e.g. "mr-mime" -> "Mr-mime"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// TitleWords turns an API slug like "medium-slow" into "Medium Slow"
func TitleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// TypeSymbol returns the energy glyph for a type, "?" when unknown
func TypeSymbol(typeName string) string {
	if s, ok := typeSymbols[typeName]; ok {
		return s
	}
	return "?"
}

// Metres and Kilograms convert PokeAPI's decimetres and hectograms
func Metres(height int) float64 { return float64(height) / 10 }
func Kilograms(weight int) float64 { return float64(weight) / 10 }

// CardHeight is "0.7 m"; CardWeight is "6.9 kg"
func CardHeight(height int) string { return fmt.Sprintf("%.1f m", Metres(height)) }
func CardWeight(weight int) string { return fmt.Sprintf("%.1f kg", Kilograms(weight)) }

// Height is "0.7m (2.3ft)"
func Height(height int) string {
	m := Metres(height)
	return fmt.Sprintf("%.1fm (%.1fft)", m, m*3.281)
}

// Weight is "6.9kg (15.2lb)"
func Weight(weight int) string {
	kg := Kilograms(weight)
	return fmt.Sprintf("%.1fkg (%.1flb)", kg, kg*2.205)
}

// BaseExperience returns the base experience, treating 0 as absent
func BaseExperience(p types.Pokemon) (string, error) {
	if p.BaseExperience == nil || *p.BaseExperience == 0 {
		return "", missing("base_experience")
	}
	return strconv.Itoa(*p.BaseExperience), nil
}

// MainAbility returns the first non-hidden ability
func MainAbility(p types.Pokemon) (string, error) {
	for _, a := range p.Abilities {
		if !a.IsHidden {
			return TitleWords(a.Ability.Name), nil
		}
	}
	return "", missing("ability")
}

// HiddenAbility returns the first hidden ability
func HiddenAbility(p types.Pokemon) (string, error) {
	for _, a := range p.Abilities {
		if a.IsHidden {
			return TitleWords(a.Ability.Name), nil
		}
	}
	return "", missing("hidden_ability")
}

// CatchRate renders "45 (17.6%)" against the 255 maximum
func CatchRate(s types.Species) (string, error) {
	if s.CaptureRate == nil {
		return "", missing("capture_rate")
	}
	rate := *s.CaptureRate
	return fmt.Sprintf("%d (%.1f%%)", rate, float64(rate)/255*100), nil
}

// GrowthRate returns the title-cased growth rate name
func GrowthRate(s types.Species) (string, error) {
	return namedField("growth_rate", s.GrowthRate)
}

// Habitat returns the title-cased habitat name
func Habitat(s types.Species) (string, error) {
	return namedField("habitat", s.Habitat)
}

// Shape returns the title-cased body shape
func Shape(s types.Species) (string, error) {
	return namedField("shape", s.Shape)
}

// Color returns the title-cased Pokédex color
func Color(s types.Species) (string, error) {
	return namedField("color", s.Color)
}

// EggGroups joins the egg groups, e.g. "Monster, Plant"
func EggGroups(s types.Species) (string, error) {
	if len(s.EggGroups) == 0 {
		return "", missing("egg_groups")
	}
	names := make([]string, 0, len(s.EggGroups))
	for _, g := range s.EggGroups {
		names = append(names, TitleWords(g.Name))
	}
	return strings.Join(names, ", "), nil
}

// GenderRatio renders "♂ 87.5% ♀ 12.5%" from the female eighths, or "Genderless"
func GenderRatio(s types.Species) string {
	if s.GenderRate < 0 {
		return "Genderless"
	}
	female := float64(s.GenderRate) / 8 * 100
	male := 100 - female
	return fmt.Sprintf("♂ %s%% ♀ %s%%",
		strconv.FormatFloat(male, 'f', -1, 64),
		strconv.FormatFloat(female, 'f', -1, 64))
}

// Happiness returns the base happiness
func Happiness(s types.Species) (string, error) {
	if s.BaseHappiness == nil {
		return "", missing("base_happiness")
	}
	return strconv.Itoa(*s.BaseHappiness), nil
}

// HatchSteps renders (counter+1)*255 steps
func HatchSteps(s types.Species) (string, error) {
	if s.HatchCounter == nil {
		return "", missing("hatch_counter")
	}
	return fmt.Sprintf("%d steps", (*s.HatchCounter+1)*255), nil
}

// GenerationLabel turns "generation-iv" into "Gen IV"
func GenerationLabel(s types.Species) (string, error) {
	if s.Generation == nil || s.Generation.Name == "" {
		return "", missing("generation")
	}
	parts := strings.SplitN(s.Generation.Name, "-", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", missing("generation")
	}
	return "Gen " + strings.ToUpper(parts[1]), nil
}

// FlavorText returns the first English entry with form feeds and newlines flattened
func FlavorText(s types.Species) (string, error) {
	for _, f := range s.FlavorTextEntries {
		if f.Language.Name == english {
			r := strings.NewReplacer("\f", " ", "\n", " ", "\r", "")
			return r.Replace(f.FlavorText), nil
		}
	}
	return "", missing("flavor_text")
}

// Genus returns the English genus, e.g. "Seed Pokémon"
func Genus(s types.Species) (string, error) {
	for _, g := range s.Genera {
		if g.Language.Name == english {
			return g.Genus, nil
		}
	}
	return "", missing("genus")
}

func namedField(field string, r *types.NamedResource) (string, error) {
	if r == nil || r.Name == "" {
		return "", missing(field)
	}
	return TitleWords(r.Name), nil
}
