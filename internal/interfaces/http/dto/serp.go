package dto

import (
	"copytool-ai-api/internal/application/serp"
	"copytool-ai-api/internal/infrastructure/search"
)

// SerpSearchRequest 搜索请求
type SerpSearchRequest struct {
	Query string `form:"q" binding:"required"`
}

// SearchResultResponse 单条搜索结果
type SearchResultResponse struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// SerpSearchResponse 搜索响应
type SerpSearchResponse struct {
	Results []SearchResultResponse `json:"results"`
}

// ToSerpSearchResponse 转换搜索结果为响应
func ToSerpSearchResponse(results []search.Result) *SerpSearchResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultResponse(r))
	}
	return &SerpSearchResponse{Results: out}
}

// SerpAnalyzeRequest 分析请求
type SerpAnalyzeRequest struct {
	FocusKeyword string `json:"focusKeyword" binding:"required"`
	Result       struct {
		Title       string `json:"title" binding:"required"`
		Link        string `json:"link"`
		Snippet     string `json:"snippet"`
		DisplayLink string `json:"displayLink"`
	} `json:"result" binding:"required"`
}

// ToSearchResult 转换为搜索结果
func (r *SerpAnalyzeRequest) ToSearchResult() *search.Result {
	return &search.Result{
		Title:       r.Result.Title,
		Link:        r.Result.Link,
		Snippet:     r.Result.Snippet,
		DisplayLink: r.Result.DisplayLink,
	}
}

// SectionProposalResponse 小节提案
type SectionProposalResponse struct {
	HeaderType    string `json:"headerType"`
	HeaderSubject string `json:"headerSubject"`
	Content       string `json:"content"`
}

// SerpAnalyzeResponse 分析响应
type SerpAnalyzeResponse struct {
	Analysis string                  `json:"analysis"`
	Section  SectionProposalResponse `json:"section"`
}

// ToSerpAnalyzeResponse 转换分析结果为响应
func ToSerpAnalyzeResponse(analysis string, proposal serp.SectionProposal) *SerpAnalyzeResponse {
	return &SerpAnalyzeResponse{
		Analysis: analysis,
		Section:  SectionProposalResponse(proposal),
	}
}
