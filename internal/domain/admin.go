package domain

// Admin is a privileged account used to approve bookings and manage
// facilities. Only the login flow reads it; PasswordHash never leaves the
// service layer.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Email        string
}

// Session is the server-side record behind an issued session token. It is
// created at login, revoked at logout, and expires on its own via the store
// TTL.
type Session struct {
	Token    string
	AdminID  int64
	Username string
}
