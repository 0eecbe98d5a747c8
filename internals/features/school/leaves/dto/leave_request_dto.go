// file: internals/features/school/leaves/dto/leave_request_dto.go
package dto

/* =========================================================
   CREATE (siswa)
   ========================================================= */

type LeaveRequestCreateRequest struct {
	LeaveRequestType          string  `json:"leave_request_type" validate:"required,oneof=izin sakit"`
	LeaveRequestStartDate     string  `json:"leave_request_start_date" validate:"required,datetime=2006-01-02"`
	LeaveRequestEndDate       string  `json:"leave_request_end_date" validate:"required,datetime=2006-01-02"`
	LeaveRequestReason        string  `json:"leave_request_reason" validate:"required,min=3,max=1000"`
	LeaveRequestAttachmentURL *string `json:"leave_request_attachment_url" validate:"omitempty,url"`
}

/* =========================================================
   APPROVE / REJECT (guru/admin)
   ========================================================= */

type LeaveRequestApproveRequest struct {
	LeaveRequestStatus        string  `json:"leave_request_status" validate:"required,oneof=approved rejected"`
	LeaveRequestApprovalNotes *string `json:"leave_request_approval_notes" validate:"omitempty,max=1000"`
}
