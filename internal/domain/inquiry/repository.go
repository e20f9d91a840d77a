package inquiry

import "context"

type InquiryRepository interface {
	GetByID(ctx context.Context, id string) (SalesInquiry, error)
	List(ctx context.Context, status *InquiryStatus) ([]SalesInquiry, error)
	Create(ctx context.Context, inq SalesInquiry) (SalesInquiry, error)
	UpdateStatus(ctx context.Context, id string, status InquiryStatus, note *string) error
	CountOpen(ctx context.Context) (int64, error)
}

type InquiryService interface {
	Get(ctx context.Context, id string) (SalesInquiry, error)
	List(ctx context.Context, status *InquiryStatus) ([]SalesInquiry, error)
	Create(ctx context.Context, req CreateInquiryRequest, createdBy string) (SalesInquiry, error)
	UpdateStatus(ctx context.Context, id string, req UpdateInquiryStatusRequest) error
}
