package model

// StatusHealthy значение DBStatus для доступного хранилища.
const StatusHealthy = "Healthy"

// Health результат проверки хранилища.
type Health struct {
	DBStatus string `json:"db_status"`
}

// Healthy сообщает, доступно ли хранилище.
func (h Health) Healthy() bool {
	return h.DBStatus == StatusHealthy
}

// NewHealth строит результат проверки по ошибке пинга.
func NewHealth(err error) Health {
	if err != nil {
		return Health{DBStatus: "Unhealthy: " + err.Error()}
	}
	return Health{DBStatus: StatusHealthy}
}
