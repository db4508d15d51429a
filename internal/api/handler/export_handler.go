package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportSvc service.ExportService
}

func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportSvc: exportSvc,
	}
}

// ExportPosts 导出用户帖子为 CSV，download=true 时直接回传文件
func (s *ExportHandler) ExportPosts(c *gin.Context) {
	var query dto.ExportQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.exportSvc.ExportPosts(c.Request.Context(), service.ParseExportRequest(&query))
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Download {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
		c.Data(http.StatusOK, "application/octet-stream", result.Content)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResultDTO{
		Status:   "success",
		Message:  result.Message,
		Filename: result.Filename,
	})
}
