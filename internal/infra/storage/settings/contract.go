package settings

import "github.com/m04kA/SMC-SalonAdmin/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
