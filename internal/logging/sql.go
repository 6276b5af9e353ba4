package logging

import (
	"strings"

	"go.uber.org/zap"
)

func LogSQLQuery(logger *zap.Logger, sql string, args ...any) {
	logger.Debug(
		"SQL query",
		zap.String("query", strings.Join(strings.Fields(sql), " ")),
		zap.Any("args", args),
	)
}
