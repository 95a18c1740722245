package model

// User хранится и отдается как есть, пароль в открытом виде.
// Это известный пробел: хэширование не делаем, формат файла должен совпадать.
type User struct {
	ID       uint32 `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
