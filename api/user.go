package api

import (
	"net/http"
	"strconv"
	"strings"

	"finbook/repository"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	users repository.UserStore
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users repository.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name string `json:"name" binding:"required" example:"Ana"`
}

// Create 创建用户
// @Summary 创建用户
// @Description 创建一个新用户，返回包含生成 ID 的记录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "用户信息"
// @Success 201 {object} models.User "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储错误"
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "用户名不能为空")
		return
	}
	u, err := h.users.Create(c.Request.Context(), name)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Get 获取单个用户
// @Summary 获取单个用户
// @Description 根据 ID 获取用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} models.User "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	u, err := h.users.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}
	if u == nil {
		NotFound(c, "用户不存在")
		return
	}
	c.JSON(http.StatusOK, u)
}

// List 获取用户列表
// @Summary 获取用户列表
// @Description 返回全部用户，无分页
// @Tags 用户
// @Produce json
// @Success 200 {array} models.User "获取成功"
// @Failure 500 {object} Response "存储错误"
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询用户失败"))
		return
	}
	c.JSON(http.StatusOK, users)
}

// Delete 删除用户
// @Summary 删除用户
// @Description 删除指定用户；该用户名下的收入记录保留
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 204 "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	rows, err := h.users.Delete(c.Request.Context(), uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除用户失败"))
		return
	}
	if rows == 0 {
		NotFound(c, "用户不存在")
		return
	}
	c.Status(http.StatusNoContent)
}
