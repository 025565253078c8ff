package entities

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Role     UserRole
}

// DisplayName возвращает имя, а без него - логин.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
