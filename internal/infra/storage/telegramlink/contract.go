package telegramlink

import (
	"github.com/avikhr/SalonBookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
