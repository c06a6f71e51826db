package assets

import (
	"io/fs"
	"sort"
)

// Verify returns the table paths that have no file in fsys, sorted.
// Suit sprites are checked only for ids present in equip.
func Verify(fsys fs.FS, equip EquipMap) ([]string, error) {
	present, err := List(fsys, "**/*.png")
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(present))
	for _, p := range present {
		have[p] = true
	}

	want := staticPaths()
	reg := NewRegistry(equip)
	for id := range equip {
		if k, ok := reg.EquipSprite(id); ok {
			want = append(want, Path(CategoryEquip, k))
		}
	}

	seen := map[string]bool{}
	var missing []string
	for _, p := range want {
		if have[p] || seen[p] {
			continue
		}
		seen[p] = true
		missing = append(missing, p)
	}
	sort.Strings(missing)
	return missing, nil
}
