package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/mailer"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"regexp"

	"Inkwell/internal/repository"

	"github.com/jinzhu/copier"
)

var upperCaseRegex = regexp.MustCompile(`[A-Z]`)

type UserService interface {
	Register(ctx context.Context, reg *dto.RegisterDTO) (uint64, error)
	Login(ctx context.Context, cred *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	GetUsers(ctx context.Context) ([]*dto.UserDTO, error)
	UpdateUser(ctx context.Context, userID uint64, upd *dto.UpdateUserDTO) error
	DeleteUser(ctx context.Context, userID uint64) error
	GetUsersOverview(ctx context.Context) ([]*dto.UserOverviewDTO, error)
}

type userServiceImpl struct {
	userRepo  repository.UserRepo
	postRepo  repository.PostRepo
	likeRepo  repository.LikeRepo
	genderSvc GenderService
	mail      mailer.Mailer
}

func NewUserService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	likeRepo repository.LikeRepo,
	genderSvc GenderService,
	mail mailer.Mailer,
) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		postRepo:  postRepo,
		likeRepo:  likeRepo,
		genderSvc: genderSvc,
		mail:      mail,
	}
}

// checkPasswordRules 密码至少 8 位且包含一个大写字母
func checkPasswordRules(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	if !upperCaseRegex.MatchString(password) {
		return "Password must contain at least one capital letter"
	}
	return ""
}

// Register 注册用户，必要时推断性别，成功后发送欢迎邮件
func (s *userServiceImpl) Register(ctx context.Context, reg *dto.RegisterDTO) (uint64, error) {
	fields := util.ValidateDTO(reg)
	if fields == nil {
		fields = map[string]string{}
	}

	if _, ok := fields["email"]; !ok && reg.Email != "" {
		if !util.IsEmail(reg.Email) {
			fields["email"] = "Invalid email address"
		} else {
			exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
			if err != nil {
				return 0, err
			}
			if exists {
				fields["email"] = "User with this email already exists"
			}
		}
	}

	if _, ok := fields["password"]; !ok && reg.Password != "" {
		if msg := checkPasswordRules(reg.Password); msg != "" {
			fields["password"] = msg
		}
	}

	if len(fields) > 0 {
		return 0, NewValidationError(fields)
	}

	gender := reg.Gender
	if gender == "" {
		gender = s.genderSvc.InferGender(ctx, reg.FullName)
	}

	hash, err := security.HashPassword(reg.Password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		FullName: reg.FullName,
		Email:    reg.Email,
		Password: hash,
		Mobile:   reg.Mobile,
		Address:  reg.Address,
		Country:  reg.Country,
		State:    reg.State,
		City:     reg.City,
		Pincode:  reg.Pincode,
		Gender:   gender,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return 0, err
	}

	// 欢迎邮件失败不影响注册
	body := fmt.Sprintf(
		"<h3>Hello %s,</h3><p>Your account has been successfully created!</p><p>Login and start posting.</p>",
		reg.FullName,
	)
	if err = s.mail.Send(ctx, reg.Email, "Welcome to Inkwell", body); err != nil {
		log.WarnContext(ctx, "welcome mail delivery failed", "email", reg.Email, "err", err)
	}

	return user.ID, nil
}

func (s *userServiceImpl) Login(ctx context.Context, cred *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	fields := map[string]string{}
	if cred.Email == "" {
		fields["email"] = "Email is required"
	}
	if cred.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	if !util.IsEmail(cred.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.userRepo.GetUserByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmailNotRegistered
	}

	if err = security.CheckPasswordHash(cred.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	return &dto.LoginResultDTO{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}, nil
}

func (s *userServiceImpl) GetUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserDTO, len(users))
	for i, user := range users {
		item := &dto.UserDTO{}
		if err = copier.Copy(item, user); err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

// UpdateUser 白名单字段更新，email 不可修改
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID uint64, upd *dto.UpdateUserDTO) error {
	exists, err := s.userRepo.ExistsById(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if upd.Email != nil {
		return ErrEmailImmutable
	}

	fields := map[string]interface{}{}
	if upd.FullName != nil {
		fields["full_name"] = *upd.FullName
	}
	if upd.Password != nil {
		if msg := checkPasswordRules(*upd.Password); msg != "" {
			return NewValidationError(map[string]string{"password": msg})
		}
		hash, hashErr := security.HashPassword(*upd.Password)
		if hashErr != nil {
			return hashErr
		}
		fields["password"] = hash
	}
	if upd.Mobile != nil {
		fields["mobile"] = *upd.Mobile
	}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if upd.Country != nil {
		fields["country"] = *upd.Country
	}
	if upd.State != nil {
		fields["state"] = *upd.State
	}
	if upd.City != nil {
		fields["city"] = *upd.City
	}
	if upd.Pincode != nil {
		fields["pincode"] = *upd.Pincode
	}
	if upd.Gender != nil {
		fields["gender"] = *upd.Gender
	}

	return s.userRepo.UpdateUserFields(ctx, userID, fields)
}

// DeleteUser 删除用户并级联清理帖子与点赞
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID uint64) error {
	exists, err := s.userRepo.ExistsById(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	return s.userRepo.DeleteUserCascade(ctx, userID)
}

// GetUsersOverview 所有用户及其帖子标题和点赞数
func (s *userServiceImpl) GetUsersOverview(ctx context.Context) ([]*dto.UserOverviewDTO, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserOverviewDTO, 0, len(users))
	for _, user := range users {
		posts, err := s.postRepo.GetPostsByUserId(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		entries := make([]dto.PostOverviewEntry, 0, len(posts))
		for _, post := range posts {
			likes, err := s.likeRepo.CountByPostId(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			entries = append(entries, dto.PostOverviewEntry{
				Title: post.Title,
				Likes: likes,
			})
		}

		out = append(out, &dto.UserOverviewDTO{
			UserID:     user.ID,
			Name:       user.FullName,
			Email:      user.Email,
			TotalPosts: len(posts),
			Posts:      entries,
		})
	}
	return out, nil
}
