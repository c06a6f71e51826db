package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_PropIconTruncatesToThreeCharacters(t *testing.T) {
	r := NewRegistry(nil)

	base, ok := r.PropIcon("111")
	require.True(t, ok)
	assert.Equal(t, Key("IconHpMax"), base)

	for _, code := range []string{"1110", "1119", "11103"} {
		k, ok := r.PropIcon(code)
		assert.True(t, ok, code)
		assert.Equal(t, base, k, code)
	}

	_, ok = r.PropIcon("11")
	assert.False(t, ok)
	_, ok = r.PropIcon("999")
	assert.False(t, ok)
}

func TestRegistry_ElementIcon(t *testing.T) {
	r := NewRegistry(nil)

	for _, id := range []int{200, 201, 202, 203, 205} {
		_, ok := r.ElementIcon(id)
		assert.True(t, ok, id)
	}
	for _, id := range []int{0, 204, 206, -1} {
		_, ok := r.ElementIcon(id)
		assert.False(t, ok, id)
	}

	k, ok := r.ElementIconCode(" 203 ")
	assert.True(t, ok)
	assert.Equal(t, Key("电属性"), k)

	_, ok = r.ElementIconCode("fire")
	assert.False(t, ok)
}

func TestRegistry_RarityAndRank(t *testing.T) {
	r := NewRegistry(nil)

	for _, l := range []string{"S", "A", "B", "C", "s", "c"} {
		k, ok := r.Rarity(l)
		assert.True(t, ok, l)
		assert.Equal(t, Key("Rarity_"+strings.ToUpper(l)), k)
	}
	for _, l := range []string{"S", "A", "B", "a"} {
		k, ok := r.Rank(l)
		assert.True(t, ok, l)
		assert.Equal(t, Key(strings.ToUpper(l)+"RANK"), k)
	}

	_, ok := r.Rank("C")
	assert.False(t, ok, "rank has no C sprite")
	_, ok = r.Rank("c")
	assert.False(t, ok)
	_, ok = r.Rarity("D")
	assert.False(t, ok)
}

func TestRegistry_EquipSpriteStripsPrefix(t *testing.T) {
	r := NewRegistry(EquipMap{
		"31000": "3_31000",
		"32000": "ab",
		"33000": "",
	})

	k, ok := r.EquipSprite("31000")
	require.True(t, ok)
	assert.Equal(t, Key("31000"), k)
	assert.Equal(t, "suit/31000.png", Path(CategoryEquip, k))

	k, ok = r.EquipSprite("32000")
	assert.True(t, ok, "short sprite ids still resolve")
	assert.Equal(t, Key(""), k)
	assert.Equal(t, "suit/.png", Path(CategoryEquip, k))

	_, ok = r.EquipSprite("33000")
	assert.False(t, ok)
	_, ok = r.EquipSprite("99999")
	assert.False(t, ok)

	_, ok = NewRegistry(nil).EquipSprite("31000")
	assert.False(t, ok)
}

func TestRegistry_ResolveDispatch(t *testing.T) {
	r := NewRegistry(EquipMap{"1": "x_suit"})

	tests := []struct {
		cat  Category
		code string
		want Key
		ok   bool
	}{
		{CategoryProp, "12101", "IconAttack", true},
		{CategoryElement, "200", "物理属性", true},
		{CategoryEquip, "1", "suit", true},
		{CategoryRarity, "a", "Rarity_A", true},
		{CategoryRank, "b", "BRANK", true},
		{CategoryRank, "C", "", false},
		{Category("nope"), "S", "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat)+"/"+tt.code, func(t *testing.T) {
			k, ok := r.Resolve(tt.cat, tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "texture2d/prop/IconCrit.png", Path(CategoryProp, "IconCrit"))
	assert.Equal(t, "texture2d/SRANK.png", Path(CategoryRank, "SRANK"))
	assert.Equal(t, "texture2d/Rarity_C.png", Path(CategoryRarity, "Rarity_C"))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Rank ")
	require.NoError(t, err)
	assert.Equal(t, CategoryRank, c)

	_, err = ParseCategory("weapon")
	assert.Error(t, err)
}
