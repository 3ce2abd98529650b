package dto

type SettingResponse struct {
	DbPath string `json:"db_path"`
}

// UpdateSettingRequest uses a pointer so an explicitly empty path passes
// validation while a missing field does not.
type UpdateSettingRequest struct {
	DbPath *string `json:"db_path" validate:"required"`
}
