package domain

// User is a read-only projection of the identity provider's record.
// Only the fields consumed for authorization and document rendering
// are mapped here; this service never writes user records.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	IsAdmin       bool   `json:"is_admin"`
	Street        string `json:"street"`
	HouseNumber   string `json:"house_number"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	CPF           string `json:"cpf"`
	RG            string `json:"rg"`
	IssuingAgency string `json:"issuing_agency"`
	JobTitle      string `json:"job_title"`
}
