package appointment

import "github.com/m04kA/SC-AppointmentService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс из txmanager, чтобы репозиторий
// одинаково работал с *sql.DB и активной транзакцией из контекста
type DBExecutor = txmanager.DBExecutor
