package request

// UpdateVerificationRequest uses a pointer so "verified": false binds as a
// present value rather than a missing field.
type UpdateVerificationRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}
