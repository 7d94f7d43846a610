package api

import (
	"net/http"
	"strconv"

	"finbook/repository"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 汇总统计处理器
type SummaryHandler struct {
	incomes repository.IncomeStore
}

// NewSummaryHandler 创建汇总统计处理器
func NewSummaryHandler(incomes repository.IncomeStore) *SummaryHandler {
	return &SummaryHandler{incomes: incomes}
}

// IncomeSummary 获取用户收入汇总
// @Summary 获取用户收入汇总
// @Description 统计该用户的收入条数、总额与平均值
// @Tags 收入
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} repository.IncomeSummary "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 500 {object} Response "存储错误"
// @Router /api/income/{id}/summary [get]
func (h *SummaryHandler) IncomeSummary(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	s, err := h.incomes.SummarizeByUserID(c.Request.Context(), uint(userID))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}
	c.JSON(http.StatusOK, s)
}
