package story

import (
	"context"

	"carbon-story-api/internal/domain/catalog"
	"carbon-story-api/internal/domain/entity"
	workflowprompt "carbon-story-api/internal/workflow/prompt"
)

const (
	prologueRole = "You are an eco-thriller writer for an interactive story game about the climate crisis. " +
		"You write short, cinematic scenes that make players feel the weight of carbon emissions in everyday life."
	prologueTask = "Write the prologue that opens the game. Introduce the protagonist in the given place and " +
		"moment, make the core theme tangible, and end on a line of dialogue that sets up the player's first choice. " +
		"Do not resolve the central conflict; build tension toward the player's choice."

	endingRole = "You are the narrative designer of an interactive story game about the climate crisis. " +
		"You close each playthrough with an ending scene that reflects the outcome of the player's choices."
	endingTaskHopeful = "Write the ending scene of the game. The tone is hopeful but grounded: " +
		"acknowledge what it cost to get here."
	endingTaskSombre = "Write the ending scene of the game. The tone is sombre and reflective: " +
		"show the consequences honestly without melodrama."
)

// PrologueInput 序章生成输入，角色与场景为原始枚举值
type PrologueInput struct {
	CoreTheme  string
	Character  entity.CharacterProfile
	Background entity.BackgroundProfile
}

// EndingInput 结局生成输入
type EndingInput struct {
	CoreTheme      string
	Prologue       string
	Ending         entity.Ending
	Character      entity.CharacterProfile
	Background     entity.BackgroundProfile
	UserSuggestion string
}

type scenarioPromptInput struct {
	Role         string
	Task         string
	CoreTheme    string
	ExtraContext string
	Character    entity.CharacterProfile
	Background   entity.BackgroundProfile
}

// BuildProloguePrompt 渲染序章提示词
func BuildProloguePrompt(ctx context.Context, in *PrologueInput) (string, error) {
	return renderScenarioPrompt(ctx, &scenarioPromptInput{
		Role:       prologueRole,
		Task:       prologueTask,
		CoreTheme:  in.CoreTheme,
		Character:  in.Character,
		Background: in.Background,
	})
}

// BuildEndingPrompt 渲染结局提示词，结局指令与序章原文一并写入
func BuildEndingPrompt(ctx context.Context, in *EndingInput) (string, error) {
	task := endingTaskSombre
	if in.Ending.Hopeful {
		task = endingTaskHopeful
	}
	return renderScenarioPrompt(ctx, &scenarioPromptInput{
		Role:         endingRole,
		Task:         task,
		CoreTheme:    in.CoreTheme,
		ExtraContext: buildEndingContext(in.Ending, in.Prologue, in.UserSuggestion),
		Character:    in.Character,
		Background:   in.Background,
	})
}

func renderScenarioPrompt(ctx context.Context, in *scenarioPromptInput) (string, error) {
	c := catalog.TranslateCharacter(in.Character)
	bg := catalog.TranslateBackground(in.Background)

	vars := map[string]any{
		"role":           in.Role,
		"task":           in.Task,
		"core_theme":     valueOrUnknown(in.CoreTheme),
		"extra_context":  in.ExtraContext,
		"character_name": in.Character.DisplayName(),
		"age":            valueOrUnknown(c.Age),
		"gender":         valueOrUnknown(c.Gender),
		"nationality":    valueOrUnknown(c.Nationality),
		"occupation":     valueOrUnknown(c.Occupation),
		"outfit":         valueOrUnknown(c.Outfit),
		"space":          valueOrUnknown(bg.Space),
		"weather":        valueOrUnknown(bg.Weather),
		"time_of_day":    valueOrUnknown(bg.TimeOfDay),
		"mood":           valueOrUnknown(bg.Mood),
		"language":       ScenarioLanguage,
	}
	return defaultPromptRegistry.Render(ctx, workflowprompt.PromptScenarioV1, vars)
}
