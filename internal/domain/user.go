package domain

// User is the server's view of the authenticated account. It is received
// wholesale on auth success or profile fetch and never mutated locally.
type User struct {
	ID           int
	Email        string
	Username     string
	FullName     string
	Age          int
	Weight       float64
	Height       float64
	Gender       string
	FitnessLevel string
	FitnessGoal  string
}

// Registration carries the fields accepted by the register endpoint.
// Optional profile fields are omitted from the request when zero.
type Registration struct {
	Email        string
	Username     string
	Password     string
	FullName     string
	Age          int
	Weight       float64
	Height       float64
	Gender       string
	FitnessLevel string
	FitnessGoal  string
}

type Credentials struct {
	Email    string
	Password string
}

// AuthResult is the success payload of register and login.
type AuthResult struct {
	Token string
	User  User
}
