package dto

// CatDTO 猫咪角色
type CatDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Persona     string `json:"persona"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	SortOrder   int    `json:"sort_order"`
}

// CreateCatDTO 新增猫咪角色
type CreateCatDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=50"`
	Persona     string `json:"persona" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
	AvatarURL   string `json:"avatar_url"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCatDTO 修改猫咪角色，空字段不更新
type UpdateCatDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Persona     *string `json:"persona" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url"`
	SortOrder   *int    `json:"sort_order"`
}
