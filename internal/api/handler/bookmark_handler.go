package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/pkg/response"
)

// Bookmark 收藏帖子
// @Summary 收藏帖子
// @Tags 收藏
// @Produce json
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookmark/{post_id} [post]
func (h *Handler) Bookmark(c *gin.Context) {
    id, ok := postID(c)
    if !ok {
        return
    }
    u := middleware.CurrentUser(c)
    changed, err := h.bookmarkService.Bookmark(c.Request.Context(), u, id)
    if err != nil {
        fail(c, err)
        return
    }
    if !changed {
        response.SuccessMsg(c, "post already bookmarked", nil)
        return
    }
    response.SuccessMsg(c, "post bookmarked", nil)
}

// Unbookmark 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /unbookmark/{post_id} [post]
func (h *Handler) Unbookmark(c *gin.Context) {
    id, ok := postID(c)
    if !ok {
        return
    }
    u := middleware.CurrentUser(c)
    changed, err := h.bookmarkService.Unbookmark(c.Request.Context(), u, id)
    if err != nil {
        fail(c, err)
        return
    }
    if !changed {
        response.SuccessMsg(c, "post was not bookmarked", nil)
        return
    }
    response.SuccessMsg(c, "bookmark removed", nil)
}

// Bookmarks 收藏列表，sort_by 支持
// bookmark_newest | bookmark_oldest | post_newest | post_oldest
// @Summary 收藏列表
// @Tags 收藏
// @Param sort_by query string false "排序键" default(bookmark_newest)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /bookmarks [get]
func (h *Handler) Bookmarks(c *gin.Context) {
    u := middleware.CurrentUser(c)
    sortBy := c.DefaultQuery("sort_by", repository.SortBookmarkNewest)
    page, pageSize := pageParams(c)
    posts, err := h.bookmarkService.List(c.Request.Context(), u, sortBy, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "sort_by": sortBy, "posts": posts})
}
