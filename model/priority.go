package model

// PrioritySetting é uma regra de escalonamento definida pela empresa:
// pedidos parados em um status por mais de MinutesThreshold minutos
// recebem o nível/rótulo de prioridade correspondente.
type PrioritySetting struct {
	DTO
	CompanyID        uint   `gorm:"index" json:"companyId"`
	Status           string `json:"status"`
	MinutesThreshold int    `json:"minutesThreshold"`
	PriorityLevel    int    `json:"priorityLevel"`
	PriorityLabel    string `json:"priorityLabel"`
}

type CreatePrioritySettingInput struct {
	Status           string `json:"status" validate:"required,oneof=pending em_producao a_caminho"`
	MinutesThreshold int    `json:"minutesThreshold" validate:"required,min=1"`
	PriorityLevel    int    `json:"priorityLevel" validate:"required,min=1"`
	PriorityLabel    string `json:"priorityLabel" validate:"required,min=1,max=40"`
}

type UpdatePrioritySettingInput struct {
	Status           *string `json:"status" validate:"omitempty,oneof=pending em_producao a_caminho"`
	MinutesThreshold *int    `json:"minutesThreshold" validate:"omitempty,min=1"`
	PriorityLevel    *int    `json:"priorityLevel" validate:"omitempty,min=1"`
	PriorityLabel    *string `json:"priorityLabel" validate:"omitempty,min=1,max=40"`
}
