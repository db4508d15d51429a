package dto

// Response 通用响应包装
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationResponse 字段校验失败响应
type ValidationResponse struct {
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	RequiredFields map[string]string `json:"required_fields"`
}
