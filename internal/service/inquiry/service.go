package inquiry

import (
	"context"
	"fmt"

	"github.com/distrohub/distro-backend-go/internal/domain/inquiry"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type InquiryServiceImpl struct {
	db *database.DB
	inquiry.InquiryRepository
}

func NewInquiryService(db *database.DB, inquiryRepository inquiry.InquiryRepository) inquiry.InquiryService {
	return &InquiryServiceImpl{
		db:                db,
		InquiryRepository: inquiryRepository,
	}
}

// Get implements inquiry.InquiryService.
func (s *InquiryServiceImpl) Get(ctx context.Context, id string) (inquiry.SalesInquiry, error) {
	inq, err := s.InquiryRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inquiry.SalesInquiry{}, inquiry.ErrInquiryNotFound
		}
		return inquiry.SalesInquiry{}, fmt.Errorf("failed to get inquiry by id: %w", err)
	}
	return inq, nil
}

// List implements inquiry.InquiryService.
func (s *InquiryServiceImpl) List(ctx context.Context, status *inquiry.InquiryStatus) ([]inquiry.SalesInquiry, error) {
	inquiries, err := s.InquiryRepository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// Create implements inquiry.InquiryService.
func (s *InquiryServiceImpl) Create(ctx context.Context, req inquiry.CreateInquiryRequest, createdBy string) (inquiry.SalesInquiry, error) {
	inq := inquiry.SalesInquiry{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Area:         req.Area,
		ProductID:    req.ProductID,
		Note:         req.Note,
		Status:       inquiry.InquiryStatusOpen,
		CreatedBy:    createdBy,
	}
	created, err := s.InquiryRepository.Create(ctx, inq)
	if err != nil {
		return inquiry.SalesInquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return created, nil
}

// UpdateStatus implements inquiry.InquiryService. A closed inquiry is
// frozen; converted inquiries may still be closed.
func (s *InquiryServiceImpl) UpdateStatus(ctx context.Context, id string, req inquiry.UpdateInquiryStatusRequest) error {
	inq, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if inq.Status == inquiry.InquiryStatusClosed {
		return inquiry.ErrInquiryClosed
	}

	status, _ := inquiry.ParseInquiryStatus(req.Status)
	if err := s.InquiryRepository.UpdateStatus(ctx, id, status, req.Note); err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return nil
}
