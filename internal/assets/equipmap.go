package assets

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EquipMap is a SpriteLookup backed by a YAML document of the form
//
//	equip:
//	  "31000": "3_31000"
type EquipMap map[string]string

// Lookup returns the sprite id for equipID. Empty ids count as missing.
func (m EquipMap) Lookup(equipID string) (string, bool) {
	s, ok := m[equipID]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// LoadEquipMap decodes an equipment mapping document.
func LoadEquipMap(r io.Reader) (EquipMap, error) {
	var doc struct {
		Equip map[string]string `yaml:"equip"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return EquipMap{}, nil
		}
		return nil, fmt.Errorf("decode equip map: %w", err)
	}
	if doc.Equip == nil {
		return EquipMap{}, nil
	}
	return EquipMap(doc.Equip), nil
}

// LoadEquipMapFile reads an equipment mapping from path.
func LoadEquipMapFile(path string) (EquipMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := LoadEquipMap(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}
