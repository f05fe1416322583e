package vkng

import (
	"context"

	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"golang.org/x/exp/slog"
)

type debugMessenger struct {
	logger *slog.Logger
	trace  bool
}

func (m debugMessenger) createInfo() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	severity := ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning
	if m.trace {
		severity |= ext_debug_utils.SeverityInfo | ext_debug_utils.SeverityVerbose
	}

	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severity,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    m.log,
	}
}

// log never aborts the call that triggered the message
func (m debugMessenger) log(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	level := slog.LevelDebug
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		level = slog.LevelError
	case severity&ext_debug_utils.SeverityWarning != 0:
		level = slog.LevelWarn
	case severity&ext_debug_utils.SeverityInfo != 0:
		level = slog.LevelInfo
	}

	m.logger.Log(context.Background(), level, data.Message,
		slog.Any("Type", msgType),
		slog.String("MessageID", data.MessageIDName),
	)
	return false
}
