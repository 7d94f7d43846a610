package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"finbook/models"
	"finbook/repository"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	incomes repository.IncomeStore
}

// NewExportHandler 创建导出处理器
func NewExportHandler(incomes repository.IncomeStore) *ExportHandler {
	return &ExportHandler{incomes: incomes}
}

func (h *ExportHandler) incomesForExport(c *gin.Context) ([]models.Income, uint, bool) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		BadRequest(c, "请提供有效的 user_id")
		return nil, 0, false
	}
	list, err := h.incomes.GetByUserID(c.Request.Context(), uint(userID))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, 0, false
	}
	return list, uint(userID), true
}

func description(in models.Income) string {
	if in.Description == nil {
		return ""
	}
	return *in.Description
}

// ExportCSV 导出收入记录为 CSV
// @Summary 导出收入记录为 CSV
// @Description 导出指定用户的全部收入记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param user_id query int true "用户ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储错误"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	list, userID, ok := h.incomesForExport(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 打开时正确识别编码
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "用户ID", "名称", "描述", "金额"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, in := range list {
		row := []string{
			strconv.FormatUint(uint64(in.ID), 10),
			strconv.FormatUint(uint64(in.UserID), 10),
			in.Name,
			description(in),
			strconv.FormatUint(uint64(in.Amount), 10),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("incomes_user%d.csv", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出收入记录为 JSON
// @Summary 导出收入记录为 JSON
// @Description 导出指定用户的全部收入记录为 JSON 附件
// @Tags 导出
// @Produce json
// @Param user_id query int true "用户ID"
// @Success 200 {array} models.Income "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储错误"
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	list, userID, ok := h.incomesForExport(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf("incomes_user%d.json", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(http.StatusOK, list)
}

// ExportExcel 导出收入记录为 Excel
// @Summary 导出收入记录为 Excel
// @Description 导出指定用户的全部收入记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id query int true "用户ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储错误"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	list, userID, ok := h.incomesForExport(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收入记录"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "用户ID", "名称", "描述", "金额"}
	for i, hname := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hname)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, in := range list {
		values := []interface{}{in.ID, in.UserID, in.Name, description(in), in.Amount}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}
	f.SetColWidth(sheetName, "A", "E", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("incomes_user%d.xlsx", userID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
