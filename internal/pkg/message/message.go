package message

const (
	InvalidInput = "Invalid input."
	ServerError  = "Something went wrong."
)
