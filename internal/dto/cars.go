package dto

type AddCarRequestDTO struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Tesla Model S"`
	ImageURL string `json:"image_url" example:"https://example.com/img.jpg"`
	RentFee  int64  `json:"rent_fee" example:"10"`
	SaleFee  int64  `json:"sale_fee" example:"50000"`
}

type EditCarRequestDTO struct {
	Name     string `json:"name" example:"Tesla Model S"`
	ImageURL string `json:"image_url" example:"https://example.com/img.jpg"`
	Enabled  bool   `json:"enabled" example:"true"`
	RentFee  int64  `json:"rent_fee" example:"10"`
	SaleFee  int64  `json:"sale_fee" example:"50000"`
}

type CarResponseDTO struct {
	ID        int64  `json:"id" example:"1"`
	Name      string `json:"name" example:"Tesla Model S"`
	ImageURL  string `json:"image_url" example:"https://example.com/img.jpg"`
	Enabled   bool   `json:"enabled" example:"true"`
	InUse     bool   `json:"in_use" example:"false"`
	Available bool   `json:"available" example:"true"`
	RentFee   int64  `json:"rent_fee" example:"10"`
	SaleFee   int64  `json:"sale_fee" example:"50000"`
}

type CarAvailabilityResponseDTO struct {
	ID        int64 `json:"id" example:"1"`
	Available bool  `json:"available" example:"true"`
}

type ListCarIDsResponseDTO struct {
	IDs []int64 `json:"ids"`
}

type TransferAdminRequestDTO struct {
	Login string `json:"login" example:"new-admin"`
}

type AdminResponseDTO struct {
	UserID int    `json:"user_id" example:"1"`
	Login  string `json:"login" example:"admin"`
}
