package dto

// ChatReq 对话请求，ChatID 为空时开启新会话
type ChatReq struct {
	ChatID  string `json:"chat_id"`
	Message string `json:"message" binding:"required"`
}

// ChatResp 对话响应
type ChatResp struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// TopicResp 选题建议响应
type TopicResp struct {
	Text string `json:"text"`
}

// ExtractReq 截图数据提取请求
type ExtractReq struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// ExtractResp 截图数据提取响应
type ExtractResp struct {
	Text string `json:"text"`
}
