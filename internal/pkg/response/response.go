package response

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessMessage 成功返回，仅携带提示
func SuccessMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.Response{
		Status:  "success",
		Message: message,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, dto.Response{
		Status:  "error",
		Message: message,
	})
}

// ValidationFailed 字段校验失败，返回 字段->提示 映射
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationResponse{
		Status:         "error",
		Message:        "Validation failed",
		RequiredFields: fields,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var fieldErr *service.ValidationError
	if errors.As(err, &fieldErr) {
		ValidationFailed(c, fieldErr.Fields)
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		ValidationFailed(c, util.ValidationFields(ve))
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = http.StatusInternalServerError
		log.Error("Error", "err", err)
	}
	Fail(c, code, err.Error())
}
