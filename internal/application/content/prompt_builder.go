package content

import (
	"fmt"
	"strings"

	"copytool-ai-api/internal/domain/entity"
)

// BuildPrompt 根据表单输入与品牌上下文组装提示词
// 纯函数：任何可选字段缺失都只是省略对应子句，永不失败
func BuildPrompt(form *FormInput, brand *entity.Brand) string {
	language := form.Language
	if language == "" {
		language = DefaultLanguage
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Je bent een professionele content schrijver. Schrijf %s content voor een %s.\n\n", language, form.ContentType)

	writeBrandBlock(&sb, brand)

	switch form.ContentType {
	case entity.ContentTypeBlogPost:
		sb.WriteString("## Blog Post Instructies:\n")
		sb.WriteString("- Schrijf een SEO-vriendelijke blog post\n")
		writeKeywordClauses(&sb, form)
		writeWordCountClauses(&sb, form)
		writeSections(&sb, form.Sections)

	case entity.ContentTypeWebPage:
		sb.WriteString("## Web Page Instructies:\n")
		sb.WriteString("- Schrijf content voor een webpagina\n")
		writeKeywordClauses(&sb, form)
		writeWordCountClauses(&sb, form)
		writeSections(&sb, form.Sections)

	case entity.ContentTypeEmail:
		sb.WriteString("## Email Instructies:\n")
		sb.WriteString("- Schrijf een professionele email\n")
		if form.EmailSubject != "" {
			fmt.Fprintf(&sb, "- Onderwerp: %q\n", form.EmailSubject)
		}
		if form.EmailType != "" {
			fmt.Fprintf(&sb, "- Email type: %s\n", form.EmailType)
		}
		writeWordCountClauses(&sb, form)
		writeSections(&sb, form.Sections)

	case entity.ContentTypeSocialMedia:
		sb.WriteString("## Social Media Instructies:\n")
		sb.WriteString("- Schrijf social media content\n")
		if form.SocialPlatform != "" {
			fmt.Fprintf(&sb, "- Platform: %s\n", form.SocialPlatform)
		}
		if form.PostGoal != "" {
			fmt.Fprintf(&sb, "- Doel van de post: %s\n", form.PostGoal)
		}
		if form.TargetURL != "" {
			fmt.Fprintf(&sb, "- Link naar: %s\n", form.TargetURL)
		}

	default:
		// 未知类型不产生类型专属块，提示词保持最小形态
	}

	if form.Summary != "" {
		fmt.Fprintf(&sb, "\n## Samenvatting:\n%s\n", form.Summary)
	}
	if form.BackgroundInfo != "" {
		fmt.Fprintf(&sb, "\n## Extra Context:\n%s\n", form.BackgroundInfo)
	}
	if form.ExampleText != "" {
		fmt.Fprintf(&sb, "\n## Voorbeeld Tekst:\n%s\n", form.ExampleText)
	}

	writeOutputDirective(&sb, form.ContentType, language)

	return sb.String()
}

// writeBrandBlock 品牌风格块，guidelines 与 tone of voice 各自独立省略
func writeBrandBlock(sb *strings.Builder, brand *entity.Brand) {
	if brand == nil {
		return
	}
	sb.WriteString("## Brand Guidelines:\n")
	if brand.BrandGuidelines != "" {
		fmt.Fprintf(sb, "- Brand Guidelines: %s\n", brand.BrandGuidelines)
	}
	if brand.ToneOfVoice != "" {
		fmt.Fprintf(sb, "- Tone of Voice: %s\n", brand.ToneOfVoice)
	}
	sb.WriteString("\n")
}

func writeKeywordClauses(sb *strings.Builder, form *FormInput) {
	if form.FocusKeyword != "" {
		fmt.Fprintf(sb, "- Focus keyword: %q\n", form.FocusKeyword)
	}
	if form.SecondaryKeywords != "" {
		fmt.Fprintf(sb, "- Secundaire keywords: %s\n", form.SecondaryKeywords)
	}
}

func writeWordCountClauses(sb *strings.Builder, form *FormInput) {
	if form.MinWordCount != "" {
		fmt.Fprintf(sb, "- Minimaal aantal woorden: %s\n", form.MinWordCount)
	}
	if form.MaxWordCount != "" {
		fmt.Fprintf(sb, "- Maximaal aantal woorden: %s\n", form.MaxWordCount)
	}
}

// writeSections 枚举表单中的小节，标题类型大写，描述缩进在标题行之后
func writeSections(sb *strings.Builder, sections []Section) {
	if len(sections) == 0 {
		return
	}
	sb.WriteString("- Gebruik de volgende secties:\n")
	for i, section := range sections {
		fmt.Fprintf(sb, "  %d. %s: %s\n", i+1, strings.ToUpper(section.HeaderType), section.HeaderSubject)
		if section.Content != "" {
			fmt.Fprintf(sb, "     Beschrijving: %s\n", section.Content)
		}
	}
}

// 各内容类型要求的 JSON 输出形态示例
var outputShapes = map[string]string{
	entity.ContentTypeBlogPost: `{
  "metaTitle": "SEO titel (max 60 karakters)",
  "metaDescription": "SEO beschrijving (max 160 karakters)",
  "h1": "Hoofdtitel",
  "intro": "Inleidende alinea",
  "mainContent": "De volledige blog post",
  "sections": [{"header": "Sectie titel", "headerType": "h2", "content": "Sectie tekst"}]
}`,
	entity.ContentTypeWebPage: `{
  "metaTitle": "SEO titel (max 60 karakters)",
  "metaDescription": "SEO beschrijving (max 160 karakters)",
  "h1": "Hoofdtitel",
  "intro": "Inleidende alinea",
  "mainContent": "De volledige paginatekst",
  "sections": [{"header": "Sectie titel", "headerType": "h2", "content": "Sectie tekst"}]
}`,
	entity.ContentTypeEmail: `{
  "emailSubject": "Onderwerpregel",
  "emailPreheader": "Preheader tekst",
  "mainContent": "De volledige email tekst"
}`,
	entity.ContentTypeSocialMedia: `{
  "socialMediaPost": "De post tekst",
  "hashtags": ["hashtag1", "hashtag2"],
  "callToAction": "Call to action",
  "mainContent": "De volledige post inclusief hashtags"
}`,
}

const genericOutputShape = `{
  "mainContent": "De volledige content"
}`

// writeOutputDirective 输出格式指令，始终作为提示词的结尾
func writeOutputDirective(sb *strings.Builder, contentType, language string) {
	shape, ok := outputShapes[contentType]
	if !ok {
		shape = genericOutputShape
	}

	fmt.Fprintf(sb, "\n## Output Formaat:\nSchrijf de content in %s. Zorg voor een professionele, engageerende toon die past bij de brand guidelines.\n", language)
	fmt.Fprintf(sb, "Geef het antwoord als geldige JSON in exact deze vorm:\n%s\n", shape)
	sb.WriteString("Het antwoord moet uitsluitend deze JSON bevatten, zonder toelichting of andere tekst eromheen.")
}
