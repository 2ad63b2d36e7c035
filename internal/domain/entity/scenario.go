package entity

// ScenarioKind 剧情类型
type ScenarioKind string

const (
	ScenarioKindPrologue ScenarioKind = "prologue"
	ScenarioKindEnding   ScenarioKind = "ending"
)

// ParseScenarioKind 解析剧情类型，未知值返回 false
func ParseScenarioKind(s string) (ScenarioKind, bool) {
	switch ScenarioKind(s) {
	case ScenarioKindPrologue, ScenarioKindEnding:
		return ScenarioKind(s), true
	default:
		return "", false
	}
}

// DefaultComposition 生成结果缺少姿态标签时的兜底
const DefaultComposition = "character standing naturally"

// ScenarioResult 剧情文本与姿态描述
type ScenarioResult struct {
	Scenario    string `json:"scenario"`
	Composition string `json:"composition"`
}

// EndingType 结局类型
type EndingType string

const (
	EndingSuccess          EndingType = "success"
	EndingFailureCarbon    EndingType = "failure-carbon"
	EndingFailureHappiness EndingType = "failure-happiness"
)

// Ending 结局标题与写作指令，指令原样写入提示词
type Ending struct {
	Type      EndingType
	Title     string
	Directive string
	// Hopeful 结局基调是否为成功
	Hopeful bool
}

var endings = map[EndingType]Ending{
	EndingSuccess: {
		Type:  EndingSuccess,
		Title: "Carbon Neutral Dawn",
		Directive: "The protagonist's choices paid off. Emissions fell below the critical threshold while " +
			"people kept their livelihoods and dignity. Show a world that is visibly healing: cleaner air, " +
			"communities working together, and a quiet, earned sense of hope. The victory must feel hard-won, " +
			"with traces of the struggle still visible.",
		Hopeful: true,
	},
	EndingFailureCarbon: {
		Type:  EndingFailureCarbon,
		Title: "The Boiling Point",
		Directive: "The protagonist could not stop the rise of emissions. The climate has crossed its tipping " +
			"point: relentless heat, failing harvests and displaced families. Describe the consequences " +
			"concretely through the protagonist's surroundings and let regret and exhaustion color the scene, " +
			"without melodrama.",
		Hopeful: false,
	},
	EndingFailureHappiness: {
		Type:  EndingFailureHappiness,
		Title: "The Silent Sacrifice",
		Directive: "Emissions were cut, but at the cost of people's happiness. Strict controls drained color " +
			"from daily life: empty streets, rationed joy and tired faces. Portray a technically saved planet " +
			"that feels hollow, and let the protagonist sense what was lost along the way.",
		Hopeful: false,
	},
}

// LookupEnding 查找结局定义，未知类型返回 false
func LookupEnding(t string) (Ending, bool) {
	e, ok := endings[EndingType(t)]
	return e, ok
}

// EndingTypes 返回全部结局类型
func EndingTypes() []EndingType {
	return []EndingType{EndingSuccess, EndingFailureCarbon, EndingFailureHappiness}
}
