package catalog

import (
	"fmt"
	"strings"

	"carbon-story-api/internal/domain/entity"
)

// UniformOutfit 随职业变化的服装枚举值
const UniformOutfit = "직업 유니폼"

// OutfitFor 翻译服装，职业制服按职业生成描述
func OutfitFor(outfit, occupation string) string {
	if outfit == UniformOutfit {
		occ := Occupations.Lookup(occupation)
		return fmt.Sprintf("professional work uniform typical of %s %s", article(occ), occ)
	}
	return Outfits.Lookup(outfit)
}

// TranslateCharacter 逐字段翻译角色设定，Name 保持原样
func TranslateCharacter(p entity.CharacterProfile) entity.CharacterProfile {
	return entity.CharacterProfile{
		Name:        p.Name,
		Age:         Ages.Lookup(p.Age),
		Gender:      Genders.Lookup(p.Gender),
		Nationality: Nationalities.Lookup(p.Nationality),
		Occupation:  Occupations.Lookup(p.Occupation),
		Outfit:      OutfitFor(p.Outfit, p.Occupation),
		ArtStyle:    ArtStyles.Lookup(p.ArtStyle),
	}
}

// TranslateBackground 逐字段翻译场景设定，Composition 由 CameraKeyword 处理
func TranslateBackground(b entity.BackgroundProfile) entity.BackgroundProfile {
	return entity.BackgroundProfile{
		Space:       Spaces.Lookup(b.Space),
		Weather:     Weathers.Lookup(b.Weather),
		TimeOfDay:   TimesOfDay.Lookup(b.TimeOfDay),
		Mood:        Moods.Lookup(b.Mood),
		Composition: b.Composition,
	}
}

// DescribeCharacter 生成英文角色描述，例如
// "a Korean woman in their twenties, working as a climate scientist, named 서연, wearing casual everyday clothes"
func DescribeCharacter(p entity.CharacterProfile) string {
	t := TranslateCharacter(p)

	head := make([]string, 0, 3)
	for _, part := range []string{t.Nationality, t.Gender, t.Age} {
		if s := strings.TrimSpace(part); s != "" {
			head = append(head, s)
		}
	}

	var b strings.Builder
	if len(head) == 0 {
		b.WriteString("a person")
	} else {
		b.WriteString(article(head[0]))
		b.WriteString(" ")
		b.WriteString(strings.Join(head, " "))
	}
	if s := strings.TrimSpace(t.Occupation); s != "" {
		b.WriteString(", working as ")
		b.WriteString(article(s))
		b.WriteString(" ")
		b.WriteString(s)
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		b.WriteString(", named ")
		b.WriteString(name)
	}
	if s := strings.TrimSpace(t.Outfit); s != "" {
		b.WriteString(", wearing ")
		b.WriteString(s)
	}
	return b.String()
}

// DescribeBackground 生成英文场景描述
func DescribeBackground(bg entity.BackgroundProfile) string {
	t := TranslateBackground(bg)
	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(t.Space); s != "" {
		parts = append(parts, "set in "+s)
	}
	if s := strings.TrimSpace(t.Weather); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(t.TimeOfDay); s != "" {
		parts = append(parts, "at "+s)
	}
	if s := strings.TrimSpace(t.Mood); s != "" {
		parts = append(parts, s+" atmosphere")
	}
	return strings.Join(parts, ", ")
}

// article 按首字母选择不定冠词
func article(word string) string {
	if word == "" {
		return "a"
	}
	switch strings.ToLower(word[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	default:
		return "a"
	}
}

// UnknownCodes 返回不在映射表中的非空枚举字段名，这些值会原样进入提示词
func UnknownCodes(p entity.CharacterProfile, b entity.BackgroundProfile) []string {
	checks := []struct {
		field string
		table Table
		code  string
	}{
		{"age", Ages, p.Age},
		{"gender", Genders, p.Gender},
		{"nationality", Nationalities, p.Nationality},
		{"occupation", Occupations, p.Occupation},
		{"artStyle", ArtStyles, p.ArtStyle},
		{"space", Spaces, b.Space},
		{"weather", Weathers, b.Weather},
		{"timeOfDay", TimesOfDay, b.TimeOfDay},
		{"mood", Moods, b.Mood},
	}

	var unknown []string
	for _, c := range checks {
		if c.code != "" && !c.table.Has(c.code) {
			unknown = append(unknown, c.field)
		}
	}
	if p.Outfit != "" && p.Outfit != UniformOutfit && !Outfits.Has(p.Outfit) {
		unknown = append(unknown, "outfit")
	}
	return unknown
}
