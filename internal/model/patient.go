package model

// UserType tags the role of the stored identity record. Profile edits always
// pin it back to UserTypePatient.
const UserTypePatient = "patient"

// Patient is the single "current patient" identity record. Field names match
// the persisted JSON layout, which predates this service and has no schema
// version.
type Patient struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	ContactNo   string `json:"contactNo"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	UserType    string `json:"userType"`
}

// UpdateProfileRequest carries a full replacement of the patient record.
// There is no partial update; the stored record is overwritten wholesale.
type UpdateProfileRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	ContactNo   string `json:"contactNo" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// Patient builds the replacement record from the request.
func (r *UpdateProfileRequest) Patient() *Patient {
	return &Patient{
		FullName:    r.FullName,
		Email:       r.Email,
		ContactNo:   r.ContactNo,
		Gender:      r.Gender,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		UserType:    UserTypePatient,
	}
}
