package request

// SupplierApplicationRequest is the registration form submitted by a
// prospective supplier. The applicant's identity comes from the verified
// token, never from this payload.
type SupplierApplicationRequest struct {
	Name         string `json:"name" binding:"required"`
	NationalID   string `json:"national_id" binding:"required"`
	VehiclePlate string `json:"vehicle_plate" binding:"required"`
	TankerPhoto  string `json:"tanker_photo" binding:"required"`
}
