package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/mailer"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	log "log/slog"
	"strconv"
	"time"
)

// utf8BOM 让常见表格软件正确识别编码
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{
	"post_id", "title", "description", "content", "category",
	"image_url", "created_at", "updated_at", "likes",
}

// ExportRequest 导出请求，user_id 优先于 email
type ExportRequest struct {
	UserID    uint64
	Email     string
	Download  bool
	SendEmail bool
}

// ExportResult 导出产物
type ExportResult struct {
	Filename string
	Content  []byte
	Download bool
	Message  string
}

type ExportService interface {
	ExportPosts(ctx context.Context, req *ExportRequest) (*ExportResult, error)
}

type exportServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
	likeRepo repository.LikeRepo
	mail     mailer.Mailer
	now      func() time.Time
}

func NewExportService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	likeRepo repository.LikeRepo,
	mail mailer.Mailer,
) ExportService {
	return &exportServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
		likeRepo: likeRepo,
		mail:     mail,
		now:      time.Now,
	}
}

// ExportPosts 导出用户的全部帖子为 CSV，可下载、可作为附件发送邮件。
// 邮件发送失败只记录日志，不影响导出本身。
func (s *exportServiceImpl) ExportPosts(ctx context.Context, req *ExportRequest) (*ExportResult, error) {
	if req.UserID == 0 && req.Email == "" {
		return nil, ErrMissingIdentifier
	}

	userID := req.UserID
	var recipient string
	if userID == 0 {
		user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserEmailNotFound
		}
		userID = user.ID
		recipient = user.Email
	}

	posts, err := s.postRepo.GetPostsByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writer := csv.NewWriter(&buf)
	if err = writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, post := range posts {
		likes, countErr := s.likeRepo.CountByPostId(ctx, post.ID)
		if countErr != nil {
			return nil, countErr
		}
		row := []string{
			strconv.FormatUint(post.ID, 10),
			post.Title,
			util.StripHTML(post.Description),
			util.StripHTML(post.Content),
			post.Category,
			post.Image,
			post.CreatedAt.Format(time.DateTime),
			post.UpdatedAt.Format(time.DateTime),
			strconv.FormatInt(likes, 10),
		}
		if err = writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("posts_%d_%s.csv", userID, s.now().Format("20060102150405"))
	content := buf.Bytes()

	if req.SendEmail {
		if recipient == "" {
			user, userErr := s.userRepo.GetUserById(ctx, userID)
			if userErr == nil && user != nil {
				recipient = user.Email
			}
		}
		if recipient != "" {
			err = s.mail.Send(ctx, recipient,
				"Your Posts Export",
				"Attached is the CSV export of your posts.",
				mailer.Attachment{Filename: filename, Content: content},
			)
			if err != nil {
				log.WarnContext(ctx, "export mail delivery failed", "recipient", recipient, "err", err)
			}
		}
	}

	message := "CSV generated"
	if req.SendEmail {
		message += " and emailed"
	}

	return &ExportResult{
		Filename: filename,
		Content:  content,
		Download: req.Download,
		Message:  message,
	}, nil
}

// ParseExportRequest 解析宽松布尔参数后的导出请求
func ParseExportRequest(q *dto.ExportQueryDTO) *ExportRequest {
	return &ExportRequest{
		UserID:    q.UserID,
		Email:     q.Email,
		Download:  util.ParseTruthy(q.Download),
		SendEmail: util.ParseTruthy(q.SendEmail),
	}
}
