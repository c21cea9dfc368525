package service

import "errors"

var (
    // 表单校验类错误（重复输入）
    ErrUsernameTaken = errors.New("username already taken")
    ErrEmailTaken    = errors.New("email already registered")
    // 认证失败统一不区分用户不存在与密码错误，避免用户枚举
    ErrInvalidCredentials = errors.New("invalid username or password")
    ErrUserNotFound       = errors.New("user not found")
    ErrPostNotFound       = errors.New("post not found")
    ErrFollowSelf         = errors.New("cannot follow self")
)
