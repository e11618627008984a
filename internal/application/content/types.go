// Package content 实现文案生成的核心管线：提示词构建、模型调用与结果规整
package content

// DefaultLanguage 默认目标语言
const DefaultLanguage = "dutch"

// Section 表单中的一个内容小节
type Section struct {
	ID            string `json:"id"`
	HeaderType    string `json:"headerType"`
	HeaderSubject string `json:"headerSubject"`
	Content       string `json:"content"`
}

// FormInput 生成表单输入
// 除 ContentType 外所有字段均可缺省，提示词构建按存在性逐项降级
type FormInput struct {
	ContentType       string    `json:"contentType"`
	Language          string    `json:"language"`
	Model             string    `json:"model"`
	FocusKeyword      string    `json:"focusKeyword"`
	SecondaryKeywords string    `json:"secondaryKeywords"`
	MinWordCount      string    `json:"minWordCount"`
	MaxWordCount      string    `json:"maxWordCount"`
	Summary           string    `json:"summary"`
	PostGoal          string    `json:"postGoal"`
	BackgroundInfo    string    `json:"backgroundInfo"`
	TargetURL         string    `json:"targetUrl"`
	SocialPlatform    string    `json:"socialPlatform"`
	EmailSubject      string    `json:"emailSubject"`
	EmailType         string    `json:"emailType"`
	ExampleText       string    `json:"exampleText"`
	Sections          []Section `json:"sections"`
}
