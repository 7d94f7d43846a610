package api

import (
	"net/http"
	"strconv"
	"strings"

	"finbook/models"
	"finbook/repository"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	incomes repository.IncomeStore
}

// NewIncomeHandler 创建收入处理器
func NewIncomeHandler(incomes repository.IncomeStore) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

type CreateIncomeRequest struct {
	UserID      uint    `json:"user_id" binding:"required,gt=0" example:"1"`
	Name        string  `json:"name" binding:"required" example:"Salary"`
	Description *string `json:"description" example:"Monthly salary"`
	Amount      uint    `json:"amount" binding:"required,gt=0" example:"5000"`
}

type UpdateIncomeRequest struct {
	UserID      *uint   `json:"user_id" binding:"omitempty,gt=0"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Amount      *uint   `json:"amount" binding:"omitempty,gt=0"`
}

// Create 创建收入
// @Summary 创建收入
// @Description 为指定用户创建一条收入记录，名称与金额在入库前校验
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} models.Income "创建成功"
// @Failure 400 {object} Response "名称为空、金额为零或请求体格式错误"
// @Failure 500 {object} Response "存储错误"
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "收入名称不能为空")
		return
	}

	in := models.Income{
		UserID:      req.UserID,
		Name:        name,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := h.incomes.Create(c.Request.Context(), &in); err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入失败"))
		return
	}
	c.JSON(http.StatusCreated, in)
}

// ListByUser 获取指定用户的收入列表
// 路径参数是用户 ID；路由树同一位置只允许一个通配符名，统一用 :id
// @Summary 获取用户收入列表
// @Description 返回该用户的全部收入记录；用户没有记录时返回空数组
// @Tags 收入
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {array} models.Income "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 500 {object} Response "存储错误"
// @Router /api/income/{id} [get]
func (h *IncomeHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	list, err := h.incomes.GetByUserID(c.Request.Context(), uint(userID))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入失败"))
		return
	}
	c.JSON(http.StatusOK, list)
}

// Update 更新收入
// @Summary 更新收入
// @Description 按 ID 部分更新收入记录，未提供的字段保持不变
// @Tags 收入
// @Accept json
// @Produce json
// @Param id path int true "收入ID"
// @Param request body UpdateIncomeRequest true "更新的收入信息"
// @Success 200 {object} models.Income "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/income/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, "收入名称不能为空")
			return
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}

	in, err := h.incomes.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "更新收入失败"))
		return
	}
	if in == nil {
		NotFound(c, "记录不存在")
		return
	}
	c.JSON(http.StatusOK, in)
}

// Delete 删除收入
// @Summary 删除收入
// @Description 删除指定的收入记录
// @Tags 收入
// @Produce json
// @Param id path int true "收入ID"
// @Success 204 "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/income/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	rows, err := h.incomes.Delete(c.Request.Context(), uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除收入失败"))
		return
	}
	if rows == 0 {
		NotFound(c, "记录不存在")
		return
	}
	c.Status(http.StatusNoContent)
}
