package serp

import (
	"strings"
)

// 分析文本中的启发式标记
const (
	headingMarker     = "**H2:"
	bodyMarkerPhrase  = "Dit onderwerp is cruciaal"
	defaultHeading    = "Nieuwe sectie"
	defaultHeaderType = "h2"
)

// SectionProposal 从分析文本中提取出的小节提案
type SectionProposal struct {
	HeaderType    string `json:"headerType"`
	HeaderSubject string `json:"headerSubject"`
	Content       string `json:"content"`
}

// ProposeSection 从叙述性分析文本中启发式提取一个小节
// 逐行扫描：标题取第一个以标题标记开头的行，正文从标记短语所在行起；
// 标记缺失时分别退回默认标题与整段分析，结果始终非空
func ProposeSection(analysisText string) SectionProposal {
	lines := strings.Split(analysisText, "\n")

	header := defaultHeading
	for _, line := range lines {
		if strings.HasPrefix(line, headingMarker) {
			header = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(line, headingMarker), "**", ""))
			if header == "" {
				header = defaultHeading
			}
			break
		}
	}

	content := analysisText
	for i, line := range lines {
		if strings.Contains(line, bodyMarkerPhrase) {
			content = strings.Join(lines[i:], "\n")
			break
		}
	}

	return SectionProposal{
		HeaderType:    defaultHeaderType,
		HeaderSubject: header,
		Content:       content,
	}
}
