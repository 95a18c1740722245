package model

// Database - все состояние в памяти: две коллекции по id записи.
// Без блокировок и без I/O, доступ сериализует вызывающий код.
type Database struct {
	Tasks map[uint32]Task `json:"tasks"`
	Users map[uint32]User `json:"users"`
}

func NewDatabase() *Database {
	return &Database{
		Tasks: make(map[uint32]Task),
		Users: make(map[uint32]User),
	}
}

// Normalize создает nil-коллекции, например после чтения документа без них
func (db *Database) Normalize() {
	if db.Tasks == nil {
		db.Tasks = make(map[uint32]Task)
	}
	if db.Users == nil {
		db.Users = make(map[uint32]User)
	}
}

// Clone возвращает независимую копию
func (db *Database) Clone() *Database {
	out := &Database{
		Tasks: make(map[uint32]Task, len(db.Tasks)),
		Users: make(map[uint32]User, len(db.Users)),
	}
	for id, t := range db.Tasks {
		out.Tasks[id] = t
	}
	for id, u := range db.Users {
		out.Users[id] = u
	}
	return out
}

// AddTask вставляет задачу или перезаписывает задачу с тем же id
func (db *Database) AddTask(t Task) {
	db.Tasks[t.ID] = t
}

func (db *Database) GetTask(id uint32) (Task, bool) {
	t, ok := db.Tasks[id]
	return t, ok
}

func (db *Database) ListTasks() []Task {
	tasks := make([]Task, 0, len(db.Tasks))
	for _, t := range db.Tasks {
		tasks = append(tasks, t)
	}
	return tasks
}

// UpdateTask - upsert: отсутствующая задача будет создана
func (db *Database) UpdateTask(t Task) {
	db.AddTask(t)
}

func (db *Database) DeleteTask(id uint32) {
	delete(db.Tasks, id)
}

// AddUser вставляет пользователя или перезаписывает по id
func (db *Database) AddUser(u User) {
	db.Users[u.ID] = u
}

func (db *Database) GetUser(id uint32) (User, bool) {
	u, ok := db.Users[id]
	return u, ok
}

func (db *Database) ListUsers() []User {
	users := make([]User, 0, len(db.Users))
	for _, u := range db.Users {
		users = append(users, u)
	}
	return users
}

func (db *Database) UpdateUser(u User) {
	db.AddUser(u)
}

func (db *Database) DeleteUser(id uint32) {
	delete(db.Users, id)
}
