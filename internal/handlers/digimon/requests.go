package digimon

type compareRequest struct {
	IDs []int `json:"ids" form:"ids" validate:"required,len=2"`
}
