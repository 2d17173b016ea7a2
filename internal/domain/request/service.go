package request

import "context"

type Service interface {
	Create(ctx context.Context, employeeID string, req CreateRequestRequest) (RequestResponse, error)
	Get(ctx context.Context, viewer Viewer, id string) (RequestResponse, error)
	ListMine(ctx context.Context, employeeID string, filter ListRequestsFilter) (ListRequestsResponse, error)
	ListManaged(ctx context.Context, managerID string, filter ListRequestsFilter) (ListRequestsResponse, error)
	ListAll(ctx context.Context, filter ListRequestsFilter) (ListRequestsResponse, error)
	Approve(ctx context.Context, managerID, id string) (RequestResponse, error)
	Reject(ctx context.Context, managerID, id string) (RequestResponse, error)
	Cancel(ctx context.Context, employeeID, id string) (RequestResponse, error)
	Schedule(ctx context.Context, managerID string, req ScheduleRequest) (ScheduleResponse, error)
}
