package handler

import (
    "net/http"
    "net/url"
    "strings"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/pkg/response"
)

type registerRequest struct {
    Username string `form:"username" json:"username" binding:"required,username,min=3,max=64"`
    Email    string `form:"email" json:"email" binding:"required,email,max=120"`
    Password string `form:"password" json:"password" binding:"required,min=6,max=72"`
}

type loginRequest struct {
    Username string `form:"username" json:"username" binding:"required"`
    Password string `form:"password" json:"password" binding:"required"`
}

type forgetRequest struct {
    Email string `form:"email" json:"email" binding:"required,email"`
}

// RegisterForm 注册表单
// @Summary 注册表单
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response
// @Router /register [get]
func (h *Handler) RegisterForm(c *gin.Context) {
    response.Success(c, gin.H{"title": "Register", "fields": []string{"username", "email", "password"}})
}

// Register 创建账号
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if _, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
        fail(c, err)
        return
    }
    response.Redirect(c, "/login", "account created, please sign in")
}

// LoginForm 登录表单
// @Summary 登录表单
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response
// @Router /login [get]
func (h *Handler) LoginForm(c *gin.Context) {
    response.Success(c, gin.H{"title": "Sign In", "fields": []string{"username", "password"}})
}

// Login 登录，支持 next 跳转参数
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Param next query string false "登录后跳转的相对路径"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        fail(c, err)
        return
    }
    token, _, err := h.authService.IssueSession(user)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    c.SetSameSite(http.SameSiteLaxMode)
    c.SetCookie(h.jwtCfg.Cookie, token, int(h.jwtCfg.TTL.Seconds()), "/", "", false, true)

    next := c.Query("next")
    if !safeNext(next) {
        next = "/"
    }
    response.Redirect(c, next, "signed in")
}

// Logout 退出登录
// @Summary 退出
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [get]
func (h *Handler) Logout(c *gin.Context) {
    if token, err := c.Cookie(h.jwtCfg.Cookie); err == nil && token != "" {
        if claims, err := h.authService.ParseSession(token); err == nil && claims.ExpiresAt != nil {
            _ = h.sessions.Revoke(c.Request.Context(), claims.ID, time.Until(claims.ExpiresAt.Time))
        }
    }
    c.SetCookie(h.jwtCfg.Cookie, "", -1, "/", "", false, true)
    response.Redirect(c, "/", "signed out")
}

// ForgetForm 找回密码表单
// @Summary 找回密码表单
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response
// @Router /forget [get]
func (h *Handler) ForgetForm(c *gin.Context) {
    response.Success(c, gin.H{"title": "Forget Password", "fields": []string{"email"}})
}

// Forget 找回密码（表单存在但无后端动作）
// @Summary 找回密码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body forgetRequest true "邮箱"
// @Success 200 {object} response.Response
// @Router /forget [post]
func (h *Handler) Forget(c *gin.Context) {
    var req forgetRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    // 不泄露账号是否存在，也不实际发信
    response.SuccessMsg(c, "if the account exists you will receive reset instructions", nil)
}

// safeNext 只允许同源相对路径，拒绝绝对/协议相对地址，防开放重定向
func safeNext(next string) bool {
    if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
        return false
    }
    u, err := url.Parse(next)
    if err != nil {
        return false
    }
    return u.Scheme == "" && u.Host == ""
}
