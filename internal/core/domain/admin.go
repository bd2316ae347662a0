package domain

// Admin is the single administrator record. Only the first stored row is consulted.
type Admin struct {
	Name     string `db:"name"`
	Password string `db:"password"`
}
