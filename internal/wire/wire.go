package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/pkg/mailer"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)

	mail := mailer.NewHTTPMailer(&cfg.Mail)
	images := minio.NewFileStore()
	genderSvc := service.NewGenderService(&cfg.Gender)

	userService := service.NewUserService(userRepo, postRepo, likeRepo, genderSvc, mail)
	postService := service.NewPostService(postRepo, userRepo, images)
	likeService := service.NewLikeService(likeRepo, postRepo, userRepo)
	exportService := service.NewExportService(userRepo, postRepo, likeRepo, mail)

	handlers := &api.HandlersGroup{
		UserHandler:   handler.NewUserHandler(userService),
		PostHandler:   handler.NewPostHandler(postService),
		LikeHandler:   handler.NewLikeHandler(likeService),
		ExportHandler: handler.NewExportHandler(exportService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
