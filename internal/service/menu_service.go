package service

import (
	"os"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/menu"
)

type IMenuService interface {
	GetContent() menu.Content
}

type menuService struct {
	filePath string
	logger   logger.ILogger
}

// NewMenuService serves the menu from a YAML file. The file is re-read on
// every call so edits apply without a restart.
func NewMenuService(filePath string, log logger.ILogger) IMenuService {
	return &menuService{filePath: filePath, logger: log}
}

func (s *menuService) GetContent() menu.Content {
	if s.filePath == "" {
		return menu.Default()
	}
	if _, err := os.Stat(s.filePath); err != nil {
		return menu.Default()
	}

	content, err := menu.LoadFile(s.filePath)
	if err != nil {
		s.logger.Warn("MenuService", "Invalid menu file, serving built-in menu", map[string]interface{}{
			"path":  s.filePath,
			"error": err.Error(),
		})
		return menu.Default()
	}
	return content
}
