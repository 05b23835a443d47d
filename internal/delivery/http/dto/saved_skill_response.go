package dto

type SavedSkillResponse struct {
	ID               int64  `json:"id"`
	SkillDescription string `json:"skill_description"`
}
