// Package model defines domain entities for the application.
package model

// Employee represents a staff member record.
// EmployeeCode is meant to be unique and immutable once assigned, but nothing
// in this module stores employees, so it is not enforced.
type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	JobTitle     string `json:"jobTitle"`
	Phone        string `json:"phone"`
	ImageURL     string `json:"imageUrl"`
	EmployeeCode string `json:"employeeCode"`
}
