package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/response"
)

type commentRequest struct {
    Content string `form:"content" json:"content" binding:"required,max=300"`
}

func postID(c *gin.Context) (uint, bool) {
    id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
    if err != nil || id == 0 {
        response.BadRequest(c, "invalid post id")
        return 0, false
    }
    return uint(id), true
}

// PostDetail 帖子详情（含评论）
// @Summary 帖子详情
// @Tags 帖子
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response{data=service.PostDetail}
// @Failure 404 {object} response.Response
// @Router /post/{post_id} [get]
func (h *Handler) PostDetail(c *gin.Context) {
    id, ok := postID(c)
    if !ok {
        return
    }
    viewer := middleware.CurrentUser(c)
    detail, err := h.postService.Detail(c.Request.Context(), viewer, id)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, detail)
}

// AddComment 评论帖子
// @Summary 发表评论
// @Tags 帖子
// @Accept json
// @Produce json
// @Param post_id path int true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /post/{post_id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
    id, ok := postID(c)
    if !ok {
        return
    }
    var req commentRequest
    if err := c.ShouldBind(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    comment, err := h.postService.AddComment(c.Request.Context(), id, req.Content)
    if err != nil {
        fail(c, err)
        return
    }
    response.SuccessMsg(c, "comment added", service.NewCommentView(comment))
}
