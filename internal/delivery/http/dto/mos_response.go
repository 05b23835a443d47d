package dto

type MOSSkillsResponse struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

type OccupationResponse struct {
	MOSCode string `json:"mos_code"`
	Title   string `json:"title"`
}
