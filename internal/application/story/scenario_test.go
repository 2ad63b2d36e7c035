package story

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-story-api/internal/domain/entity"
	apperrors "carbon-story-api/pkg/errors"
	"carbon-story-api/pkg/metrics"
)

func sampleCharacter() entity.CharacterProfile {
	return entity.CharacterProfile{
		Name:        "서연",
		Age:         "20대",
		Gender:      "여성",
		Nationality: "한국",
		Occupation:  "농부",
		Outfit:      "직업 유니폼",
		ArtStyle:    "수채화",
	}
}

func sampleBackground() entity.BackgroundProfile {
	return entity.BackgroundProfile{
		Space:       "도시",
		Weather:     "폭염",
		TimeOfDay:   "노을",
		Mood:        "절망적인",
		Composition: "클로즈업",
	}
}

func TestParseScenario(t *testing.T) {
	t.Run("ExtractsComposition", func(t *testing.T) {
		got := ParseScenario("Para1\n\nPara2\n\n\"Line\"\n<Composition>pose X</Composition>")
		assert.Equal(t, "Para1\n\nPara2\n\n\"Line\"", got.Scenario)
		assert.Equal(t, "pose X", got.Composition)
	})
	t.Run("CaseInsensitiveMultiline", func(t *testing.T) {
		got := ParseScenario("본문\n<composition>\n  kneeling\n  on sand\n</COMPOSITION>\n")
		assert.Equal(t, "본문", got.Scenario)
		assert.Equal(t, "kneeling\n  on sand", got.Composition)
	})
	t.Run("MissingTagFallsBack", func(t *testing.T) {
		got := ParseScenario("  only narrative  ")
		assert.Equal(t, "only narrative", got.Scenario)
		assert.Equal(t, entity.DefaultComposition, got.Composition)
	})
	t.Run("EmptyTagFallsBack", func(t *testing.T) {
		res, fallback := parseScenario("text <Composition>  </Composition>")
		assert.True(t, fallback)
		assert.Equal(t, "text", res.Scenario)
		assert.Equal(t, entity.DefaultComposition, res.Composition)
	})
	t.Run("NonGreedy", func(t *testing.T) {
		got := ParseScenario("a<Composition>one</Composition>b<Composition>two</Composition>")
		assert.Equal(t, "one", got.Composition)
		assert.Equal(t, "ab", got.Scenario)
	})
}

func TestBuildProloguePrompt(t *testing.T) {
	out, err := BuildProloguePrompt(context.Background(), &PrologueInput{
		CoreTheme:  "탄소 배출과 일상의 선택",
		Character:  sampleCharacter(),
		Background: sampleBackground(),
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Core theme: 탄소 배출과 일상의 선택")
	assert.Contains(t, out, "- Name: 서연")
	assert.Contains(t, out, "- Occupation: farmer")
	assert.Contains(t, out, "professional work uniform typical of a farmer")
	assert.Contains(t, out, "- Weather: scorching heatwave haze")
	assert.Contains(t, out, "Write everything in Korean")
	assert.Contains(t, out, "<Composition>")
	assert.Contains(t, out, "700 characters")
	assert.Contains(t, out, "eco-thriller writer")
	assert.Contains(t, out, "Do not resolve the central conflict")
	assert.Contains(t, out, "build tension toward the player's choice")
	assert.NotContains(t, out, "{")
}

func TestBuildProloguePromptUnnamed(t *testing.T) {
	c := sampleCharacter()
	c.Name = "  "
	out, err := BuildProloguePrompt(context.Background(), &PrologueInput{CoreTheme: "x", Character: c})
	require.NoError(t, err)
	assert.Contains(t, out, "- Name: Unnamed")
	assert.Contains(t, out, "- Location: unspecified")
}

func TestBuildEndingPrompt(t *testing.T) {
	prologue := "첫 문단.\n\n둘째 문단.\n\n\"대사\""
	for _, et := range entity.EndingTypes() {
		t.Run(string(et), func(t *testing.T) {
			ending, ok := entity.LookupEnding(string(et))
			require.True(t, ok)

			out, err := BuildEndingPrompt(context.Background(), &EndingInput{
				CoreTheme:      "theme",
				Prologue:       prologue,
				Ending:         ending,
				Character:      sampleCharacter(),
				Background:     sampleBackground(),
				UserSuggestion: "바다를 보여줘",
			})
			require.NoError(t, err)
			assert.Contains(t, out, ending.Directive)
			assert.Contains(t, out, prologue)
			assert.Contains(t, out, "바다를 보여줘")
			assert.Contains(t, out, "Follow the ending directive strictly")
			assert.Contains(t, out, "Never state the ending's name ("+ending.Title+")")
			assert.Contains(t, out, "label the outcome explicitly")
			if ending.Hopeful {
				assert.Contains(t, out, endingTaskHopeful)
			} else {
				assert.Contains(t, out, endingTaskSombre)
			}
		})
	}

	ending, _ := entity.LookupEnding(string(entity.EndingSuccess))
	out, err := BuildEndingPrompt(context.Background(), &EndingInput{Prologue: prologue, Ending: ending})
	require.NoError(t, err)
	assert.NotContains(t, out, "The player also suggests")
}

func TestScenarioGenerator(t *testing.T) {
	ctx := context.Background()
	in := &PrologueInput{CoreTheme: "theme", Character: sampleCharacter(), Background: sampleBackground()}

	t.Run("Success", func(t *testing.T) {
		m := &fakeChatModel{generate: replyWith("문단1\n\n문단2\n\n\"대사\"\n<Composition>holding a seedling</Composition>")}
		f := &fakeFactory{model: m}
		g := NewScenarioGenerator(f, testConfig())

		res, err := g.Prologue(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "문단1\n\n문단2\n\n\"대사\"", res.Scenario)
		assert.Equal(t, "holding a seedling", res.Composition)
		assert.Equal(t, []string{"gemini"}, f.names)
		assert.Equal(t, 1, m.calls())
	})

	t.Run("EndingUsesDirective", func(t *testing.T) {
		m := &fakeChatModel{generate: replyWith("끝.")}
		g := NewScenarioGenerator(&fakeFactory{model: m}, testConfig())
		ending, _ := entity.LookupEnding("failure-carbon")

		res, err := g.Ending(ctx, &EndingInput{CoreTheme: "t", Prologue: "p", Ending: ending})
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultComposition, res.Composition)
		assert.True(t, strings.Contains(m.prompts[0], ending.Directive))
	})

	t.Run("EmptyResultIsError", func(t *testing.T) {
		m := &fakeChatModel{generate: replyWith("   ")}
		g := NewScenarioGenerator(&fakeFactory{model: m}, testConfig())

		_, err := g.Prologue(ctx, in)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyProviderResult))
	})

	t.Run("OnlyTagIsEmpty", func(t *testing.T) {
		m := &fakeChatModel{generate: replyWith("<Composition>pose</Composition>")}
		g := NewScenarioGenerator(&fakeFactory{model: m}, testConfig())

		_, err := g.Prologue(ctx, in)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyProviderResult))
	})

	t.Run("ProviderError", func(t *testing.T) {
		m := &fakeChatModel{generate: func(int, string) (*schema.Message, error) {
			return nil, errors.New("upstream 500")
		}}
		g := NewScenarioGenerator(&fakeFactory{model: m}, testConfig())

		_, err := g.Prologue(ctx, in)
		require.Error(t, err)
		appErr := apperrors.AsAppError(err)
		assert.Equal(t, apperrors.CodeScenarioFailed, appErr.Code)
		assert.Equal(t, 502, appErr.HTTPStatus)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		f := &fakeFactory{err: apperrors.ErrProviderNotConfigured}
		g := NewScenarioGenerator(f, testConfig())

		_, err := g.Prologue(ctx, in)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderNotConfigured))
	})
}

func TestNoteUnknownCodes(t *testing.T) {
	counter := metrics.CatalogUnknownCodeTotal.WithLabelValues("weather")
	before := testutil.ToFloat64(counter)

	fields := noteUnknownCodes(context.Background(),
		entity.CharacterProfile{Gender: "여성"},
		entity.BackgroundProfile{Weather: "산성비"})

	assert.Equal(t, []string{"weather"}, fields)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Nil(t, noteUnknownCodes(context.Background(), entity.CharacterProfile{}, entity.BackgroundProfile{}))
}
