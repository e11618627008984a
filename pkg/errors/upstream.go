// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
)

// UpstreamError 上游服务（生成/搜索）返回非 2xx 状态码。
// 上游的原始响应体原样携带，供调用方记录与展示。
type UpstreamError struct {
	Status int
	Body   string
}

// Error 实现 error 接口
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// TransportError 到上游服务的网络调用失败（超时、连接中断、响应包损坏）
type TransportError struct {
	Err error
}

// Error 实现 error 接口
func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream transport failure: %v", e.Err)
}

// Unwrap 返回底层错误
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsUpstreamError 将错误转换为 UpstreamError
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if stderrors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// AsTransportError 将错误转换为 TransportError
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}
