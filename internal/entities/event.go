package entities

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
)

func (t ChangeType) String() string {
	return string(t)
}

// ChangeEvent - уведомление о том, что запись заказа изменилась.
// Содержимое события не считается достоверным: актуальное состояние всегда запрашивается заново.
type ChangeEvent struct {
	Type      ChangeType
	RecordID  string
	OrderCode string
}
