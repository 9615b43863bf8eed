package update_fields

import "github.com/m04kA/SMC-WorkoutForm/internal/service/sessions/models"

// UpdateFieldsRequest HTTP request model
// Передаются только изменившиеся поля
type UpdateFieldsRequest struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty"`
	Age     *int    `json:"age,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFieldsRequest) ToServiceRequest() *models.UpdateFieldsRequest {
	return &models.UpdateFieldsRequest{
		Name:    r.Name,
		Surname: r.Surname,
		Email:   r.Email,
		Age:     r.Age,
	}
}
