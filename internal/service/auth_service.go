package service

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
)

// SessionClaims 会话 token 负载
type SessionClaims struct {
    UserID uint `json:"uid"`
    jwt.RegisteredClaims
}

// AuthService 注册 / 登录 / 会话签发
type AuthService interface {
    Register(ctx context.Context, username, email, password string) (*model.User, error)
    Authenticate(ctx context.Context, username, password string) (*model.User, error)
    IssueSession(user *model.User) (token string, claims *SessionClaims, err error)
    ParseSession(token string) (*SessionClaims, error)
}

type authService struct {
    userRepo repository.UserRepository
    jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) AuthService {
    return &authService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
    if taken, err := s.userRepo.UsernameTaken(ctx, username, 0); err != nil {
        return nil, err
    } else if taken {
        return nil, ErrUsernameTaken
    }
    if taken, err := s.userRepo.EmailTaken(ctx, email); err != nil {
        return nil, err
    } else if taken {
        return nil, ErrEmailTaken
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    u := &model.User{
        Username:     username,
        Email:        email,
        PasswordHash: string(hash),
        LastSeen:     time.Now().UTC(),
    }
    if err := s.userRepo.Create(ctx, u); err != nil {
        // 并发注册时由唯一索引兜底
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return nil, ErrUsernameTaken
        }
        return nil, err
    }
    return u, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
    u, err := s.userRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrInvalidCredentials
        }
        return nil, err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
        return nil, ErrInvalidCredentials
    }
    return u, nil
}

func (s *authService) IssueSession(user *model.User) (string, *SessionClaims, error) {
    now := time.Now()
    claims := &SessionClaims{
        UserID: user.ID,
        RegisteredClaims: jwt.RegisteredClaims{
            ID:        uuid.New().String(),
            Subject:   user.Username,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.TTL)),
        },
    }
    token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
    if err != nil {
        return "", nil, err
    }
    return token, claims, nil
}

func (s *authService) ParseSession(token string) (*SessionClaims, error) {
    var claims SessionClaims
    _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, jwt.ErrSignatureInvalid
        }
        return []byte(s.jwtCfg.Secret), nil
    })
    if err != nil {
        return nil, err
    }
    return &claims, nil
}
