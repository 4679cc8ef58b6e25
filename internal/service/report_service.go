package service

import (
	"context"

	"socialgram/internal/authz"
	"socialgram/internal/models"
	"socialgram/internal/repository"
)

type ReportService interface {
	CreateReport(ctx context.Context, actor *models.User, postID, reason string) (*models.Report, error)
	Summarize(ctx context.Context, postID string) (*models.ReportSummary, error)
	Moderate(ctx context.Context, actor *models.User, reportID, newStatus string) (*models.Report, error)
	ListReports(ctx context.Context, actor *models.User) ([]models.Report, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	postRepo   repository.PostRepository
}

func NewReportService(reportRepo repository.ReportRepository, postRepo repository.PostRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		postRepo:   postRepo,
	}
}

// CreateReport: жаловаться нельзя на свой пост, staff жалобы не подаёт.
// Повторная жалоба той же пары (reporter, post) отсекается констрейнтом.
func (s *reportService) CreateReport(ctx context.Context, actor *models.User, postID, reason string) (*models.Report, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !authz.IsNotOwner(actor, post) {
		return nil, models.NewForbiddenError("нельзя пожаловаться на собственный пост")
	}

	if !authz.IsNotStaff(actor) {
		return nil, models.NewForbiddenError("staff не подаёт жалобы")
	}

	report := &models.Report{
		ReporterID: actor.UserID,
		PostID:     postID,
		Reason:     reason,
	}

	err = s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// Summarize собирает проекцию по нерассмотренным жалобам поста.
// IsActionTaken учитывает жалобы в любом статусе.
func (s *reportService) Summarize(ctx context.Context, postID string) (*models.ReportSummary, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	pending, err := s.reportRepo.ListPendingByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	actionTaken, err := s.reportRepo.HasActionTaken(ctx, postID)
	if err != nil {
		return nil, err
	}

	summary := &models.ReportSummary{
		PostID:        post.PostID,
		PostAuthor:    post.Author,
		PostContent:   post.Content,
		ReportsCount:  len(pending),
		ReportReasons: make([]string, 0, len(pending)),
		IsActionTaken: actionTaken,
	}

	// pending отсортированы по времени подачи
	for _, report := range pending {
		summary.ReportReasons = append(summary.ReportReasons, report.Reason)
	}

	if len(pending) > 0 {
		last := pending[len(pending)-1].CreatedAt
		summary.LastReportedAt = &last
	}

	return summary, nil
}

// допустимые переходы статуса, только вперёд
var allowedTransitions = map[string][]string{
	models.ReportStatusPending:  {models.ReportStatusReviewed, models.ReportStatusActionTaken},
	models.ReportStatusReviewed: {models.ReportStatusActionTaken},
}

func transitionAllowed(from, to string) bool {
	for _, status := range allowedTransitions[from] {
		if status == to {
			return true
		}
	}
	return false
}

// Moderate переводит жалобу в новый статус, доступно только staff
func (s *reportService) Moderate(ctx context.Context, actor *models.User, reportID, newStatus string) (*models.Report, error) {
	if !authz.IsStaff(actor) {
		return nil, models.NewForbiddenError("модерация доступна только staff")
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(report.Status, newStatus) {
		return nil, models.NewValidationError("недопустимый переход статуса: " + report.Status + " -> " + newStatus)
	}

	err = s.reportRepo.UpdateStatus(ctx, reportID, newStatus)
	if err != nil {
		return nil, err
	}

	report.Status = newStatus
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, actor *models.User) ([]models.Report, error) {
	if !authz.IsStaff(actor) {
		return nil, models.NewForbiddenError("список жалоб доступен только staff")
	}

	return s.reportRepo.ListAll(ctx)
}
