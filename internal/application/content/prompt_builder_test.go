package content

import (
	"strings"
	"testing"

	"copytool-ai-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_MinimalInput(t *testing.T) {
	form := &FormInput{ContentType: entity.ContentTypeBlogPost}

	prompt := BuildPrompt(form, nil)

	assert.True(t, strings.HasPrefix(prompt, "Je bent een professionele content schrijver. Schrijf dutch content voor een blog-post.\n\n"))
	assert.Contains(t, prompt, "## Blog Post Instructies:")
	assert.NotContains(t, prompt, "## Brand Guidelines:")
	assert.NotContains(t, prompt, "Focus keyword")
	assert.True(t, strings.HasSuffix(prompt, "Het antwoord moet uitsluitend deze JSON bevatten, zonder toelichting of andere tekst eromheen."))
}

func TestBuildPrompt_UnknownContentType(t *testing.T) {
	form := &FormInput{ContentType: "press-release"}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "Schrijf dutch content voor een press-release.")
	assert.NotContains(t, prompt, "Instructies:")
	assert.Contains(t, prompt, `"mainContent": "De volledige content"`)
	assert.True(t, strings.HasSuffix(prompt, "Het antwoord moet uitsluitend deze JSON bevatten, zonder toelichting of andere tekst eromheen."))
}

func TestBuildPrompt_BrandBlock(t *testing.T) {
	form := &FormInput{ContentType: entity.ContentTypeWebPage}
	brand := &entity.Brand{
		Name:            "Acme",
		BrandGuidelines: "Gebruik korte zinnen",
		ToneOfVoice:     "Informeel",
	}

	prompt := BuildPrompt(form, brand)

	assert.Contains(t, prompt, "## Brand Guidelines:\n- Brand Guidelines: Gebruik korte zinnen\n- Tone of Voice: Informeel\n")
}

func TestBuildPrompt_BrandBlockPartial(t *testing.T) {
	form := &FormInput{ContentType: entity.ContentTypeWebPage}
	brand := &entity.Brand{Name: "Acme", ToneOfVoice: "Zakelijk"}

	prompt := BuildPrompt(form, brand)

	assert.Contains(t, prompt, "- Tone of Voice: Zakelijk")
	assert.NotContains(t, prompt, "- Brand Guidelines:")
}

func TestBuildPrompt_FieldGating(t *testing.T) {
	form := &FormInput{
		ContentType:       entity.ContentTypeBlogPost,
		FocusKeyword:      "seo tips",
		SecondaryKeywords: "zoekwoorden, ranking",
		MinWordCount:      "800",
	}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, `- Focus keyword: "seo tips"`)
	assert.Contains(t, prompt, "- Secundaire keywords: zoekwoorden, ranking")
	assert.Contains(t, prompt, "- Minimaal aantal woorden: 800")
	assert.NotContains(t, prompt, "Maximaal aantal woorden")
	assert.NotContains(t, prompt, "## Samenvatting:")
	assert.NotContains(t, prompt, "## Extra Context:")
	assert.NotContains(t, prompt, "## Voorbeeld Tekst:")
}

func TestBuildPrompt_Sections(t *testing.T) {
	form := &FormInput{
		ContentType: entity.ContentTypeWebPage,
		Sections: []Section{
			{HeaderType: "h2", HeaderSubject: "Pricing", Content: "Explain tiers"},
			{HeaderType: "h3", HeaderSubject: "FAQ"},
		},
	}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "- Gebruik de volgende secties:\n")
	assert.Contains(t, prompt, "  1. H2: Pricing\n     Beschrijving: Explain tiers\n")
	assert.Contains(t, prompt, "  2. H3: FAQ\n")
	assert.NotContains(t, prompt, "  2. H3: FAQ\n     Beschrijving:")
}

func TestBuildPrompt_Email(t *testing.T) {
	form := &FormInput{
		ContentType:  entity.ContentTypeEmail,
		EmailSubject: "Zomeractie",
		EmailType:    "nieuwsbrief",
	}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "## Email Instructies:")
	assert.Contains(t, prompt, `- Onderwerp: "Zomeractie"`)
	assert.Contains(t, prompt, "- Email type: nieuwsbrief")
	assert.Contains(t, prompt, `"emailSubject"`)
	assert.Contains(t, prompt, `"emailPreheader"`)
}

func TestBuildPrompt_SocialMediaScenario(t *testing.T) {
	form := &FormInput{
		ContentType:    entity.ContentTypeSocialMedia,
		SocialPlatform: "Instagram Post",
		PostGoal:       "launch sale",
		TargetURL:      "https://shop.example.com/sale",
	}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "## Social Media Instructies:")
	assert.Contains(t, prompt, "- Platform: Instagram Post")
	assert.Contains(t, prompt, "launch sale")
	assert.Contains(t, prompt, "- Link naar: https://shop.example.com/sale")

	// 输出指令位于提示词结尾并要求社交媒体专属字段
	idx := strings.Index(prompt, "## Output Formaat:")
	require.True(t, idx >= 0)
	directive := prompt[idx:]
	assert.Contains(t, directive, "socialMediaPost")
	assert.Contains(t, directive, "hashtags")
	assert.Contains(t, directive, "callToAction")
}

func TestBuildPrompt_LanguageOverride(t *testing.T) {
	form := &FormInput{ContentType: entity.ContentTypeBlogPost, Language: "english"}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "Schrijf english content voor een blog-post.")
	assert.Contains(t, prompt, "Schrijf de content in english.")
}

func TestBuildPrompt_ContextBlocks(t *testing.T) {
	form := &FormInput{
		ContentType:    entity.ContentTypeBlogPost,
		Summary:        "Korte samenvatting",
		BackgroundInfo: "Wij verkopen fietsen",
		ExampleText:    "Zo schrijven wij",
	}

	prompt := BuildPrompt(form, nil)

	assert.Contains(t, prompt, "\n## Samenvatting:\nKorte samenvatting\n")
	assert.Contains(t, prompt, "\n## Extra Context:\nWij verkopen fietsen\n")
	assert.Contains(t, prompt, "\n## Voorbeeld Tekst:\nZo schrijven wij\n")
}
