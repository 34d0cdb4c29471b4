package org

type DirectionResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DirectorID *string `json:"director_id,omitempty"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DirectionID *string `json:"direction_id,omitempty"`
	ChiefID     *string `json:"chief_id,omitempty"`
}

type DepartmentResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ServiceID *string `json:"service_id,omitempty"`
	ChiefID   *string `json:"chief_id,omitempty"`
}

func ToDirectionResponse(d Direction) DirectionResponse {
	return DirectionResponse{ID: d.ID, Name: d.Name, DirectorID: d.DirectorID}
}

func ToServiceResponse(s Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, DirectionID: s.DirectionID, ChiefID: s.ChiefID}
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name, ServiceID: d.ServiceID, ChiefID: d.ChiefID}
}
