package domain

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SeedUsers returns the fixed sample directory loaded at startup.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john.doe@company.com", Role: "admin"},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@company.com", Role: "user"},
		{ID: 3, Name: "Bob Johnson", Email: "bob.johnson@company.com", Role: "user"},
		{ID: 4, Name: "Alice Brown", Email: "alice.brown@company.com", Role: "manager"},
	}
}
