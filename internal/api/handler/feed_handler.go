package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/pkg/response"
)

type postRequest struct {
    Body string `form:"body" json:"body" binding:"required,max=140"`
}

// Home 关注流
// @Summary 首页（关注流）
// @Tags 时间线
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router / [get]
func (h *Handler) Home(c *gin.Context) {
    viewer := middleware.CurrentUser(c)
    page, pageSize := pageParams(c)
    posts, err := h.feedService.Home(c.Request.Context(), viewer, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "posts": posts})
}

// CreatePost 发帖后回到首页
// @Summary 发布帖子
// @Tags 时间线
// @Accept json
// @Produce json
// @Param request body postRequest true "帖子内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router / [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req postRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    author := middleware.CurrentUser(c)
    if _, err := h.postService.Publish(c.Request.Context(), author, req.Body); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Redirect(c, "/", "post published")
}

// Explore 全站流
// @Summary 发现页（全站流）
// @Tags 时间线
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /explore [get]
func (h *Handler) Explore(c *gin.Context) {
    viewer := middleware.CurrentUser(c)
    page, pageSize := pageParams(c)
    posts, err := h.feedService.Explore(c.Request.Context(), viewer, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "posts": posts})
}
