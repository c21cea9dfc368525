package handler

import (
    "fmt"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/microblog/internal/middleware"
    "github.com/d60-Lab/microblog/pkg/response"
)

// Follow 关注目标用户
// @Summary 关注用户
// @Tags 关系链
// @Produce json
// @Param username path string true "目标用户名"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /follow/{username} [post]
func (h *Handler) Follow(c *gin.Context) {
    actor := middleware.CurrentUser(c)
    username := c.Param("username")
    changed, err := h.relService.Follow(c.Request.Context(), actor, username)
    if err != nil {
        fail(c, err)
        return
    }
    if !changed {
        response.SuccessMsg(c, fmt.Sprintf("already following %s", username), nil)
        return
    }
    response.SuccessMsg(c, fmt.Sprintf("you are now following %s", username), nil)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Produce json
// @Param username path string true "目标用户名"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /unfollow/{username} [post]
func (h *Handler) Unfollow(c *gin.Context) {
    actor := middleware.CurrentUser(c)
    username := c.Param("username")
    changed, err := h.relService.Unfollow(c.Request.Context(), actor, username)
    if err != nil {
        fail(c, err)
        return
    }
    if !changed {
        response.SuccessMsg(c, fmt.Sprintf("you are not following %s", username), nil)
        return
    }
    response.SuccessMsg(c, fmt.Sprintf("you have unfollowed %s", username), nil)
}

// Followers 粉丝列表
// @Summary 查询粉丝列表
// @Tags 关系链
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /user/{username}/followers [get]
func (h *Handler) Followers(c *gin.Context) {
    u, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
    if err != nil {
        fail(c, err)
        return
    }
    page, pageSize := pageParams(c)
    list, err := h.relService.ListFollowers(c.Request.Context(), u.ID, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

// Following 关注列表
// @Summary 查询关注列表
// @Tags 关系链
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /user/{username}/following [get]
func (h *Handler) Following(c *gin.Context) {
    u, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
    if err != nil {
        fail(c, err)
        return
    }
    page, pageSize := pageParams(c)
    list, err := h.relService.ListFollowing(c.Request.Context(), u.ID, page, pageSize)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}

func pageParams(c *gin.Context) (int, int) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
    return page, pageSize
}
