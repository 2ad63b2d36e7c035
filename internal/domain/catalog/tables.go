// Package catalog 提供客户端枚举值到英文描述的映射、画风关键词和取景关键词
package catalog

// Table 枚举值到描述短语的只读映射
type Table map[string]string

// Lookup 查表，未知值原样返回
func (t Table) Lookup(code string) string {
	if v, ok := t[code]; ok {
		return v
	}
	return code
}

// Has 是否为已知枚举值
func (t Table) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// 各字段映射表
var (
	Ages = Table{
		"10대":    "teenage",
		"20대":    "in their twenties",
		"30대":    "in their thirties",
		"40대":    "in their forties",
		"50대":    "in their fifties",
		"60대 이상": "in their sixties or older",
	}

	Genders = Table{
		"남성":    "man",
		"여성":    "woman",
		"논바이너리": "non-binary person",
	}

	Nationalities = Table{
		"한국":   "Korean",
		"미국":   "American",
		"일본":   "Japanese",
		"중국":   "Chinese",
		"영국":   "British",
		"프랑스":  "French",
		"독일":   "German",
		"인도":   "Indian",
		"브라질":  "Brazilian",
		"케냐":   "Kenyan",
		"노르웨이": "Norwegian",
		"투발루":  "Tuvaluan",
	}

	Occupations = Table{
		"기후 과학자": "climate scientist",
		"환경 운동가": "environmental activist",
		"기자":     "journalist",
		"정치인":    "politician",
		"엔지니어":   "engineer",
		"농부":     "farmer",
		"학생":     "student",
		"의사":     "doctor",
		"기업가":    "entrepreneur",
		"도시 계획가": "urban planner",
	}

	// Outfits 不含职业制服，见 OutfitFor
	Outfits = Table{
		"캐주얼":   "casual everyday clothes",
		"정장":    "tailored formal suit",
		"아웃도어":  "weatherproof outdoor gear",
		"미래형":   "sleek futuristic clothing",
		"전통 의상": "traditional attire",
	}

	ArtStyles = Table{
		"애니메이션":   "anime",
		"웹툰":      "webtoon",
		"2D 일러스트": "2D illustration",
		"동화풍":     "storybook illustration",
		"라인 아트":   "line art",
		"스케치":     "pencil sketch",
		"수채화":     "watercolor painting",
		"유화":      "oil painting",
		"픽셀 아트":   "pixel art",
		"반실사":     "semi-realistic",
		"실사":      "photorealistic",
	}

	Spaces = Table{
		"도시":    "a dense modern city",
		"해안가":   "a coastline threatened by rising seas",
		"숲":     "a forest",
		"북극":    "the melting Arctic ice field",
		"사막":    "an expanding desert",
		"농촌":    "farmland in the countryside",
		"연구소":   "a climate research laboratory",
		"발전소":   "a power plant",
		"회의장":   "an international climate summit hall",
		"미래 도시": "a futuristic eco city",
	}

	Weathers = Table{
		"맑음":   "clear sky",
		"흐림":   "overcast sky",
		"비":    "heavy rain",
		"폭풍":   "violent storm",
		"눈":    "falling snow",
		"폭염":   "scorching heatwave haze",
		"안개":   "thick fog",
		"미세먼지": "hazy fine-dust smog",
	}

	TimesOfDay = Table{
		"새벽": "dawn",
		"아침": "morning",
		"한낮": "midday",
		"노을": "sunset",
		"밤":  "night",
	}

	Moods = Table{
		"희망찬":  "hopeful",
		"긴장된":  "tense",
		"절망적인": "desperate",
		"평화로운": "peaceful",
		"신비로운": "mysterious",
		"긴박한":  "urgent",
	}
)
