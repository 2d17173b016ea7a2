package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/notification"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/google/uuid"
)

type RequestServiceImpl struct {
	requestRepo     request.RequestRepository
	userRepo        user.UserRepository
	workdaySvc      workday.Service
	notificationSvc notification.Service
	now             func() time.Time
}

// NewRequestService wires the request lifecycle. notificationSvc may be nil.
func NewRequestService(requestRepo request.RequestRepository, userRepo user.UserRepository, workdaySvc workday.Service, notificationSvc notification.Service) request.Service {
	return &RequestServiceImpl{
		requestRepo:     requestRepo,
		userRepo:        userRepo,
		workdaySvc:      workdaySvc,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

func (s *RequestServiceImpl) loc() *time.Location {
	return s.workdaySvc.Location()
}

// Create implements request.Service.
func (s *RequestServiceImpl) Create(ctx context.Context, employeeID string, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	employee, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	manager, err := s.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	startDate, err := time.ParseInLocation(workday.DateLayout, req.StartDate, s.loc())
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		end, err := time.ParseInLocation(workday.DateLayout, *req.EndDate, s.loc())
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		if end.Before(startDate) {
			return request.RequestResponse{}, request.ErrEndDateBeforeStartDate
		}
		endDate = &end
	}

	now := s.now()
	created, err := s.requestRepo.Create(ctx, request.Request{
		ID:          uuid.New().String(),
		EmployeeID:  employee.ID,
		ManagerID:   manager.ID,
		Type:        request.Type(req.Type),
		Status:      request.StatusPending,
		StartDate:   startDate,
		EndDate:     endDate,
		ProjectName: req.ProjectName,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	created.EmployeeName = employee.DisplayName()

	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: manager.ID,
		SenderID:    &employee.ID,
		Type:        notification.TypeRequestSubmitted,
		Title:       "New Request",
		Message:     fmt.Sprintf("%s submitted a %s request starting %s", employee.DisplayName(), typeLabel(created.Type), req.StartDate),
		Data:        requestData(created, s.loc()),
	})

	return s.toResponse(ctx, created)
}

// resolveManager returns the requested manager or the first user with the
// manager role.
func (s *RequestServiceImpl) resolveManager(ctx context.Context, managerID *string) (user.User, error) {
	if managerID != nil {
		m, err := s.userRepo.GetByID(ctx, *managerID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.User{}, request.ErrInvalidManager
			}
			return user.User{}, fmt.Errorf("failed to get manager: %w", err)
		}
		if !m.IsManager() {
			return user.User{}, request.ErrInvalidManager
		}
		return m, nil
	}

	managers, err := s.userRepo.ListByRole(ctx, user.RoleManager)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to list managers: %w", err)
	}
	if len(managers) == 0 {
		return user.User{}, request.ErrNoManagerAvailable
	}
	return managers[0], nil
}

// Get implements request.Service.
func (s *RequestServiceImpl) Get(ctx context.Context, viewer request.Viewer, id string) (request.RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if !viewer.CanViewAll && r.EmployeeID != viewer.UserID && r.ManagerID != viewer.UserID {
		return request.RequestResponse{}, request.ErrNotRequestOwner
	}
	return s.toResponse(ctx, r)
}

// ListMine implements request.Service.
func (s *RequestServiceImpl) ListMine(ctx context.Context, employeeID string, filter request.ListRequestsFilter) (request.ListRequestsResponse, error) {
	filter.EmployeeID = &employeeID
	filter.ManagerID = nil
	return s.list(ctx, filter)
}

// ListManaged implements request.Service.
func (s *RequestServiceImpl) ListManaged(ctx context.Context, managerID string, filter request.ListRequestsFilter) (request.ListRequestsResponse, error) {
	filter.ManagerID = &managerID
	return s.list(ctx, filter)
}

// ListAll implements request.Service.
func (s *RequestServiceImpl) ListAll(ctx context.Context, filter request.ListRequestsFilter) (request.ListRequestsResponse, error) {
	return s.list(ctx, filter)
}

func (s *RequestServiceImpl) list(ctx context.Context, filter request.ListRequestsFilter) (request.ListRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return request.ListRequestsResponse{}, err
	}

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return request.ListRequestsResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	responses, err := s.toResponses(ctx, requests)
	if err != nil {
		return request.ListRequestsResponse{}, err
	}

	return request.ListRequestsResponse{
		Requests:   responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Approve implements request.Service.
func (s *RequestServiceImpl) Approve(ctx context.Context, managerID, id string) (request.RequestResponse, error) {
	return s.decide(ctx, managerID, id, true)
}

// Reject implements request.Service.
func (s *RequestServiceImpl) Reject(ctx context.Context, managerID, id string) (request.RequestResponse, error) {
	return s.decide(ctx, managerID, id, false)
}

func (s *RequestServiceImpl) decide(ctx context.Context, managerID, id string, approve bool) (request.RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}

	from := r.Status
	now := s.now()
	if approve {
		err = r.Approve(managerID, now)
	} else {
		err = r.Reject(managerID, now)
	}
	if err != nil {
		return request.RequestResponse{}, err
	}

	if err := s.requestRepo.UpdateStatus(ctx, r, from); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
	}

	s.notifyDecision(ctx, r)
	return s.toResponse(ctx, r)
}

// notifyDecision tells the employee about the manager's decision, by e-mail
// as well when their preference allows it.
func (s *RequestServiceImpl) notifyDecision(ctx context.Context, r request.Request) {
	if s.notificationSvc == nil {
		return
	}

	employee, err := s.userRepo.GetByID(ctx, r.EmployeeID)
	if err != nil {
		slog.Warn("Failed to load employee for decision notification", "request_id", r.ID, "error", err)
		return
	}
	decidedBy := ""
	if manager, err := s.userRepo.GetByID(ctx, r.ManagerID); err == nil {
		decidedBy = manager.DisplayName()
	}

	notifType, title := notification.TypeRequestApproved, "Request Approved"
	if r.Status == request.StatusRejected {
		notifType, title = notification.TypeRequestRejected, "Request Rejected"
	}

	data := requestData(r, s.loc())
	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: r.EmployeeID,
		SenderID:    &r.ManagerID,
		Type:        notifType,
		Title:       title,
		Message:     fmt.Sprintf("Your %s request starting %s was %s", typeLabel(r.Type), data["start_date"], r.Status),
		Data:        data,
		Email: &notification.EmailContent{
			To:            employee.Email,
			Name:          employee.DisplayName(),
			RequestType:   typeLabel(r.Type),
			Status:        string(r.Status),
			StartDate:     data["start_date"].(string),
			EndDate:       data["end_date"].(string),
			DecidedByName: decidedBy,
		},
	})
}

// Cancel implements request.Service.
func (s *RequestServiceImpl) Cancel(ctx context.Context, employeeID, id string) (request.RequestResponse, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if r.EmployeeID != employeeID {
		return request.RequestResponse{}, request.ErrNotRequestOwner
	}

	from := r.Status
	wasApproved := from == request.StatusApproved
	if err := r.Cancel(s.now(), s.loc()); err != nil {
		return request.RequestResponse{}, err
	}

	if err := s.requestRepo.UpdateStatus(ctx, r, from); err != nil {
		if errors.Is(err, request.ErrRequestAlreadyProcessed) {
			return request.RequestResponse{}, request.ErrInvalidTransition
		}
		return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
	}

	if wasApproved {
		data := requestData(r, s.loc())
		s.notify(ctx, notification.CreateNotificationRequest{
			RecipientID: r.ManagerID,
			SenderID:    &r.EmployeeID,
			Type:        notification.TypeRequestCancelled,
			Title:       "Request Cancelled",
			Message:     fmt.Sprintf("An approved %s request starting %s was cancelled", typeLabel(r.Type), data["start_date"]),
			Data:        data,
		})
	}

	return s.toResponse(ctx, r)
}

// Schedule implements request.Service.
func (s *RequestServiceImpl) Schedule(ctx context.Context, managerID string, req request.ScheduleRequest) (request.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return request.ScheduleResponse{}, err
	}

	bounds := workday.MonthRange(req.Year, time.Month(req.Month), s.loc())
	candidates, err := s.requestRepo.ListInRange(ctx, &bounds.Start, &bounds.End)
	if err != nil {
		return request.ScheduleResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	scheduled := make([]request.Request, 0, len(candidates))
	for _, r := range candidates {
		if r.ManagerID != managerID || r.Status != request.StatusApproved || !r.HasStartDate() {
			continue
		}
		if workday.NewDateRange(r.StartDate, r.LastDay(), s.loc()).Overlaps(bounds) {
			scheduled = append(scheduled, r)
		}
	}

	responses, err := s.toResponses(ctx, scheduled)
	if err != nil {
		return request.ScheduleResponse{}, err
	}
	return request.ScheduleResponse{Year: req.Year, Month: req.Month, Requests: responses}, nil
}

func (s *RequestServiceImpl) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if s.notificationSvc == nil || req.RecipientID == "" {
		return
	}
	if err := s.notificationSvc.QueueNotification(ctx, req); err != nil {
		slog.Warn("Failed to queue notification", "type", req.Type, "recipient_id", req.RecipientID, "error", err)
	}
}

func (s *RequestServiceImpl) toResponse(ctx context.Context, r request.Request) (request.RequestResponse, error) {
	responses, err := s.toResponses(ctx, []request.Request{r})
	if err != nil {
		return request.RequestResponse{}, err
	}
	return responses[0], nil
}

// toResponses renders requests with their vacation workday counts, sharing
// one accountant snapshot for the whole batch.
func (s *RequestServiceImpl) toResponses(ctx context.Context, requests []request.Request) ([]request.RequestResponse, error) {
	responses := make([]request.RequestResponse, 0, len(requests))
	if len(requests) == 0 {
		return responses, nil
	}

	accountant, err := s.workdaySvc.Accountant(ctx)
	if err != nil {
		return nil, err
	}

	loc := s.loc()
	now := s.now()
	for _, r := range requests {
		resp := request.RequestResponse{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			ManagerID:    r.ManagerID,
			Type:         string(r.Type),
			Status:       string(r.Status),
			ProjectName:  r.ProjectName,
			Notes:        r.Notes,
			ApprovedBy:   r.ApprovedBy,
			CanCancel:    r.CanCancel(now, loc),
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
		}
		if r.HasStartDate() {
			resp.StartDate = r.StartDate.In(loc).Format(workday.DateLayout)
		}
		if r.EndDate != nil {
			end := r.EndDate.In(loc).Format(workday.DateLayout)
			resp.EndDate = &end
		}
		if r.DecidedAt != nil {
			decided := r.DecidedAt.Format(time.RFC3339)
			resp.DecidedAt = &decided
		}
		if r.Type == request.TypeVacation && r.HasStartDate() {
			n := accountant.CountWorkdays(r.StartDate, r.LastDay(), nil)
			resp.Workdays = &n
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func requestData(r request.Request, loc *time.Location) map[string]interface{} {
	start, end := "", ""
	if r.HasStartDate() {
		start = r.StartDate.In(loc).Format(workday.DateLayout)
		end = r.LastDay().In(loc).Format(workday.DateLayout)
	}
	return map[string]interface{}{
		"request_id": r.ID,
		"type":       string(r.Type),
		"status":     string(r.Status),
		"start_date": start,
		"end_date":   end,
	}
}

func typeLabel(t request.Type) string {
	if t == request.TypeExtraShift {
		return "extra shift"
	}
	return "vacation"
}
