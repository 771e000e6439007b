package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// WithUser 给 logger 附加当前用户标识
func WithUser(logger *zap.Logger, userID string) *zap.Logger {
	if userID == "" {
		return logger
	}
	return logger.With(zap.String("user_id", userID))
}
