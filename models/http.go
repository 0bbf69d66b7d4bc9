package models

// SignInRequest is the body of both sign-in endpoints. Login is read from
// "username" for travelers and "employee_username" for airlines.
type SignInRequest struct {
	Username         string `json:"username"`
	EmployeeUsername string `json:"employee_username"`
	Password         string `json:"password"`
}
