package ui

import (
	"sync"

	"go.uber.org/zap"

	"shopstream/internal/usecase"
)

// ConsoleNotifier はトーストの代わりにログへ出す通知面（送りっぱなし）。
type ConsoleNotifier struct {
	log *zap.Logger
}

// DI
func NewConsoleNotifier(log *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{log: log}
}

func (n *ConsoleNotifier) Notify(kind usecase.NotificationKind, title string, description string) {
	switch kind {
	case usecase.NotificationDestructive:
		n.log.Warn(title, zap.String("description", description))
	default:
		n.log.Info(title, zap.String("description", description))
	}
}

// ConsoleNavigator は画面遷移の代わりに行き先を記録するナビゲーター。
type ConsoleNavigator struct {
	log *zap.Logger

	mu      sync.Mutex
	current string
}

// DI
func NewConsoleNavigator(log *zap.Logger) *ConsoleNavigator {
	return &ConsoleNavigator{log: log}
}

func (n *ConsoleNavigator) NavigateTo(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	n.log.Info("navigate", zap.String("path", path))
}

// Current は最後に依頼された行き先を返す。
func (n *ConsoleNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
