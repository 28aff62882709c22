package session

type updateRequest struct {
	Search      *string `json:"search" form:"search"`
	Level       *string `json:"level" form:"level"`
	ViewMode    *string `json:"view_mode" form:"view_mode"`
	Sound       *bool   `json:"sound" form:"sound"`
	CompareMode *bool   `json:"compare_mode" form:"compare_mode"`
}
