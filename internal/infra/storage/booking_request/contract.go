package booking_request

import "github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
