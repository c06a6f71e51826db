// Package assets maps upstream game codes to sprite files and loads those
// files from an asset pack.
package assets

import (
	"fmt"
	"strconv"
	"strings"
)

// Category selects one of the lookup tables.
type Category string

const (
	CategoryProp    Category = "prop"
	CategoryElement Category = "element"
	CategoryEquip   Category = "equip"
	CategoryRarity  Category = "rarity"
	CategoryRank    Category = "rank"
)

// Categories lists every category in a stable order.
var Categories = []Category{CategoryProp, CategoryElement, CategoryEquip, CategoryRarity, CategoryRank}

// ParseCategory converts a route or config value into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown sprite category %q", s)
}

// Key is the file stem of a resolved sprite.
type Key string

// propIcons is keyed by the first three characters of a property id, so
// 11101 and 11103 share IconHpMax.
var propIcons = map[string]Key{
	"111": "IconHpMax",
	"121": "IconAttack",
	"131": "IconDef",
	"122": "IconBreakStun",
	"201": "IconCrit",
	"211": "IconCritDam",
	"314": "IconElementAbnormalPower",
	"312": "IconElementMystery",
	"231": "IconPenRatio",
	"232": "IconPenValue",
	"305": "IconSpRecover",
	"310": "IconSpGetRatio",
	"115": "IconSpMax",
	"315": "IconPhysDmg",
	"316": "IconFire",
	"317": "IconIce",
	"318": "IconThunder",
	"319": "IconDungeonBuffEther",
}

var elementIcons = map[int]Key{
	200: "物理属性",
	201: "火属性",
	202: "冰属性",
	203: "电属性",
	205: "以太属性",
}

var rarityIcons = map[string]Key{
	"S": "Rarity_S",
	"A": "Rarity_A",
	"B": "Rarity_B",
	"C": "Rarity_C",
}

// rankIcons has no C entry. There is no C rank sprite in the pack.
var rankIcons = map[string]Key{
	"S": "SRANK",
	"A": "ARANK",
	"B": "BRANK",
}

// equipPrefixLen is the length of the sprite id prefix that is not part of
// the suit file name.
const equipPrefixLen = 2

// SpriteLookup maps an equipment id to its sprite id.
type SpriteLookup interface {
	Lookup(equipID string) (string, bool)
}

// Registry resolves codes against the static tables. Equipment ids go
// through Equip first.
type Registry struct {
	Equip SpriteLookup
}

// NewRegistry returns a Registry using lookup for equipment sprites. A nil
// lookup leaves every equipment id unresolved.
func NewRegistry(lookup SpriteLookup) *Registry {
	return &Registry{Equip: lookup}
}

// PropIcon resolves a stat property id.
func (r *Registry) PropIcon(code string) (Key, bool) {
	k, ok := propIcons[firstRunes(code, 3)]
	return k, ok
}

// ElementIcon resolves an element id.
func (r *Registry) ElementIcon(id int) (Key, bool) {
	k, ok := elementIcons[id]
	return k, ok
}

// ElementIconCode resolves an element id given as text. Non-numeric codes
// are unresolved.
func (r *Registry) ElementIconCode(code string) (Key, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	return r.ElementIcon(id)
}

// EquipSprite resolves an equipment id to a suit sprite stem. A mapped
// sprite id with nothing after the prefix still resolves, to an empty stem,
// so the bad mapping shows up as a failed asset load.
func (r *Registry) EquipSprite(equipID string) (Key, bool) {
	if r == nil || r.Equip == nil {
		return "", false
	}
	sprite, ok := r.Equip.Lookup(equipID)
	if !ok {
		return "", false
	}
	stem := []rune(sprite)
	if len(stem) <= equipPrefixLen {
		return "", true
	}
	return Key(stem[equipPrefixLen:]), true
}

// Rarity resolves a rarity letter (S, A, B or C).
func (r *Registry) Rarity(letter string) (Key, bool) {
	k, ok := rarityIcons[strings.ToUpper(letter)]
	return k, ok
}

// Rank resolves a rank letter (S, A or B).
func (r *Registry) Rank(letter string) (Key, bool) {
	k, ok := rankIcons[strings.ToUpper(letter)]
	return k, ok
}

// Resolve dispatches to the table for cat.
func (r *Registry) Resolve(cat Category, code string) (Key, bool) {
	switch cat {
	case CategoryProp:
		return r.PropIcon(code)
	case CategoryElement:
		return r.ElementIconCode(code)
	case CategoryEquip:
		return r.EquipSprite(code)
	case CategoryRarity:
		return r.Rarity(code)
	case CategoryRank:
		return r.Rank(code)
	}
	return "", false
}

// Path returns the asset pack path of a resolved key.
func Path(cat Category, k Key) string {
	switch cat {
	case CategoryProp:
		return "texture2d/prop/" + string(k) + ".png"
	case CategoryEquip:
		return "suit/" + string(k) + ".png"
	default:
		return "texture2d/" + string(k) + ".png"
	}
}

// staticPaths lists every path the fixed tables can produce. Equipment
// sprites come from the lookup file and are not included.
func staticPaths() []string {
	var out []string
	for _, k := range propIcons {
		out = append(out, Path(CategoryProp, k))
	}
	for _, k := range elementIcons {
		out = append(out, Path(CategoryElement, k))
	}
	for _, k := range rarityIcons {
		out = append(out, Path(CategoryRarity, k))
	}
	for _, k := range rankIcons {
		out = append(out, Path(CategoryRank, k))
	}
	return out
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
