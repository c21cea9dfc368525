package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

type editProfileRequest struct {
    Username string `form:"username" json:"username" binding:"required,username,min=3,max=64"`
    AboutMe  string `form:"about_me" json:"about_me" binding:"max=140"`
    Location string `form:"location" json:"location" binding:"max=100"`
}

// Profile 资料页：用户信息 + 关注统计 + 本人帖子
// @Summary 用户资料页
// @Tags 用户
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /user/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
    viewer := middleware.CurrentUser(c)
    profile, err := h.userService.Profile(c.Request.Context(), viewer, c.Param("username"))
    if err != nil {
        fail(c, err)
        return
    }
    page, pageSize := pageParams(c)
    posts, err := h.feedService.Owner(c.Request.Context(), viewer, profile.User.ID, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    followers, err := h.relService.ListFollowers(c.Request.Context(), profile.User.ID, 1, 20)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    following, err := h.relService.ListFollowing(c.Request.Context(), profile.User.ID, 1, 20)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{
        "profile":   profile,
        "posts":     posts,
        "followers": followers,
        "following": following,
        "page":      page,
        "page_size": pageSize,
    })
}

// EditProfileForm 回显当前资料
// @Summary 编辑资料表单
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response
// @Router /edit_profile [get]
func (h *Handler) EditProfileForm(c *gin.Context) {
    u := middleware.CurrentUser(c)
    response.Success(c, gin.H{
        "username": u.Username,
        "about_me": u.AboutMe,
        "location": u.Location,
    })
}

// EditProfile 更新用户名 / 简介 / 位置
// @Summary 编辑资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body editProfileRequest true "资料"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /edit_profile [post]
func (h *Handler) EditProfile(c *gin.Context) {
    var req editProfileRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    u := middleware.CurrentUser(c)
    updated, err := h.userService.EditProfile(c.Request.Context(), u, req.Username, req.AboutMe, req.Location)
    if err != nil {
        fail(c, err)
        return
    }
    response.SuccessMsg(c, "changes saved", service.NewUserView(updated))
}
