package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
)

// ── 测试辅助 ──

func setupTestReportService() (ReportService, *testRepos) {
	repo, mocks := newTestRepository()
	svc := NewReportService(repo, zap.NewNop())
	return svc, mocks
}

func seedReportEntries(mocks *testRepos) {
	ctx := context.Background()
	// 周四 / 周六 / 周日 三条记录
	entries := []*model.TimesheetEntry{
		{UserEmail: "bob@firm.com", WorkDate: time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC),
			Client: "宏远咨询", Project: "年审", Hours: 8},
		{UserEmail: "bob@firm.com", WorkDate: time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
			Client: "宏远咨询", Project: "年审", Hours: 4},
		{UserEmail: "carol@firm.com", WorkDate: time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC),
			Client: "蓝山科技", Project: "尽调", Hours: 6},
	}
	for _, e := range entries {
		mocks.timesheet.CreateDraftGated(ctx, e, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC))
	}
}

// ── AllEntries 测试 ──

func TestReportService_AllEntries_InsertionOrder(t *testing.T) {
	svc, mocks := setupTestReportService()
	seedReportEntries(mocks)

	entries, err := svc.AllEntries(context.Background(), &dto.ReportListRequest{})
	if err != nil {
		t.Fatalf("AllEntries 应成功: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("期望3条记录，实际=%d", len(entries))
	}
	if entries[0].WorkDate != "2026-09-03" || entries[2].WorkDate != "2026-09-06" {
		t.Error("插入顺序未保持")
	}
}

func TestReportService_AllEntries_WeekendOnly(t *testing.T) {
	svc, mocks := setupTestReportService()
	seedReportEntries(mocks)

	entries, err := svc.AllEntries(context.Background(), &dto.ReportListRequest{WeekendOnly: true})
	if err != nil {
		t.Fatalf("AllEntries 应成功: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("期望2条周末记录，实际=%d", len(entries))
	}
	for _, e := range entries {
		if !e.Weekend {
			t.Errorf("记录 %s 应标记为周末", e.WorkDate)
		}
	}
}

// ── Export 测试 ──

func TestReportService_Export_Success(t *testing.T) {
	svc, mocks := setupTestReportService()
	seedReportEntries(mocks)

	buf, filename, err := svc.Export(context.Background(), &dto.ReportListRequest{})
	if err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if filename != "Timesheet_Report.xlsx" {
		t.Errorf("期望文件名=Timesheet_Report.xlsx，实际=%s", filename)
	}

	// 回读导出内容验证行数与关键单元格
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("工时明细")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	if len(rows) != 4 { // 表头 + 3 条数据
		t.Fatalf("期望4行，实际=%d", len(rows))
	}
	if rows[1][0] != "bob@firm.com" {
		t.Errorf("期望首条记录员工=bob@firm.com，实际=%s", rows[1][0])
	}
	if rows[2][6] != "是" {
		t.Errorf("周六记录的周末列应为\"是\"，实际=%s", rows[2][6])
	}
}

func TestReportService_Export_NoEntries(t *testing.T) {
	svc, _ := setupTestReportService()

	_, _, err := svc.Export(context.Background(), &dto.ReportListRequest{})
	if !errors.Is(err, ErrReportNoEntries) {
		t.Errorf("期望 ErrReportNoEntries，实际: %v", err)
	}
}
