package dto

type CreateTimeslotRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	StartAt     string `json:"start_at" binding:"required"`
	EndAt       string `json:"end_at" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gte=1"`
	Hidden      bool   `json:"hidden"`
}

type UpdateTimeslotRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	StartAt     string `json:"start_at" binding:"required"`
	EndAt       string `json:"end_at" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gte=1"`
	Status      string `json:"status" binding:"required"`
}

type BookRequest struct {
	Message string `json:"message"`
}

type CreateUserRequest struct {
	ID       string `json:"id" binding:"omitempty,uuid"`
	Username string `json:"username" binding:"required"`
}
