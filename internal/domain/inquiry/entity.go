package inquiry

import "time"

type InquiryStatus string

const (
	InquiryStatusOpen      InquiryStatus = "open"
	InquiryStatusFollowUp  InquiryStatus = "follow_up"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

func ParseInquiryStatus(s string) (InquiryStatus, bool) {
	switch InquiryStatus(s) {
	case InquiryStatusOpen, InquiryStatusFollowUp, InquiryStatusConverted, InquiryStatusClosed:
		return InquiryStatus(s), true
	}
	return "", false
}

// SalesInquiry is a prospect contact captured by marketing staff.
type SalesInquiry struct {
	ID           string
	CustomerName string
	Phone        string
	Area         string
	ProductID    *string
	Note         *string
	Status       InquiryStatus
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
