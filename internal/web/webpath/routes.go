package webpath

const (
	Auth     = "/auth"
	Register = Auth + "/register"
	Login    = Auth + "/login"
)
