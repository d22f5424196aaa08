package access

// Identity описывает действующего пользователя, от имени которого
// пришло событие (команда бота, нажатие кнопки или строка консоли).
type Identity struct {
	TelegramID int64
	Username   string
}

// Gate — единственный механизм авторизации в системе: сравнение
// username действующего пользователя с настроенным администратором.
// Ролей и детальных прав нет.
type Gate struct {
	adminUsername string
}

func NewGate(adminUsername string) *Gate {
	return &Gate{adminUsername: adminUsername}
}

// IsAdmin возвращает true только для настроенного администратора.
// Каждая привилегированная операция обязана вызвать эту проверку
// до любых побочных эффектов.
func (g *Gate) IsAdmin(identity Identity) bool {
	return g.adminUsername != "" && identity.Username == g.adminUsername
}
