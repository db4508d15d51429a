package dto

// ExportQueryDTO CSV 导出参数，download/send_email 接受 1/true/yes/y
type ExportQueryDTO struct {
	UserID    uint64 `form:"user_id"`
	Email     string `form:"email"`
	Download  string `form:"download,default=true"`
	SendEmail string `form:"send_email,default=true"`
}

// ExportResultDTO 导出摘要
type ExportResultDTO struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
