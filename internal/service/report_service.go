package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/week"
)

// ── 报表模块业务错误 ──

var (
	ErrReportNoEntries    = errors.New("暂无工时记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ReportService 报表业务接口
//
// 设计说明：
//   - 报表为全量工时记录的只读投影，按插入顺序返回
//   - 周末工时为派生过滤条件（工作日期为周六/周日）
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：单 Sheet，全部工时字段 + 派生的周末标记列
type ReportService interface {
	AllEntries(ctx context.Context, req *dto.ReportListRequest) ([]dto.EntryResponse, error)
	// Export 导出工时报表为 Excel (.xlsx)
	Export(ctx context.Context, req *dto.ReportListRequest) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// ────────────────────── AllEntries ──────────────────────

func (s *reportService) AllEntries(ctx context.Context, req *dto.ReportListRequest) ([]dto.EntryResponse, error) {
	entries, err := s.fetch(ctx, req.WeekendOnly)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toEntryResponse(&entries[i]))
	}
	return result, nil
}

// ────────────────────── Export ──────────────────────
//
// 输出格式：
//   - Sheet "工时明细"
//   - 列：员工邮箱 | 工作日期 | 客户 | 项目 | 描述 | 工时 | 周末
//   - 行序与插入顺序一致
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *reportService) Export(ctx context.Context, req *dto.ReportListRequest) (*bytes.Buffer, string, error) {
	entries, err := s.fetch(ctx, req.WeekendOnly)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrReportNoEntries
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "工时明细"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 18)
	f.SetColWidth(sheetName, "E", "E", 36)
	f.SetColWidth(sheetName, "F", "G", 8)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"员工邮箱", "工作日期", "客户", "项目", "描述", "工时", "周末"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell("G", 1), headerStyle)

	// 数据行
	row := 2
	for i := range entries {
		e := &entries[i]
		weekendMark := "-"
		if week.IsWeekend(e.WorkDate) {
			weekendMark = "是"
		}

		f.SetCellValue(sheetName, cell("A", row), e.UserEmail)
		f.SetCellValue(sheetName, cell("B", row), e.WorkDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("C", row), e.Client)
		f.SetCellValue(sheetName, cell("D", row), e.Project)
		f.SetCellValue(sheetName, cell("E", row), e.Description)
		f.SetCellValue(sheetName, cell("F", row), e.Hours)
		f.SetCellValue(sheetName, cell("G", row), weekendMark)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "Timesheet_Report.xlsx", nil
}

// ── 内部辅助 ──

// fetch 读取全量工时记录，按派生的周末谓词可选过滤
func (s *reportService) fetch(ctx context.Context, weekendOnly bool) ([]model.TimesheetEntry, error) {
	entries, err := s.repo.Timesheet.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询工时记录失败", zap.Error(err))
		return nil, err
	}

	if !weekendOnly {
		return entries, nil
	}

	filtered := make([]model.TimesheetEntry, 0, len(entries))
	for i := range entries {
		if week.IsWeekend(entries[i].WorkDate) {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
