package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/sqribble/internal/canvas"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch currentSection {
		case "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		case "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "save_dir":
		cfg.SaveDir = value
	case "cell_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid cell_size %q: %w", value, err)
		}
		if n < 1 {
			return fmt.Errorf("cell_size must be positive, got %d", n)
		}
		cfg.CellSize = n
	case "canvas_mode":
		mode, err := canvas.ParseMode(value)
		if err != nil {
			return err
		}
		cfg.CanvasMode = mode
	case "brush_shape":
		shape, err := canvas.ParseBrushShape(value)
		if err != nil {
			return err
		}
		cfg.BrushShape = shape
	case "brush_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid brush_size %q: %w", value, err)
		}
		if n < canvas.MinBrushSize {
			n = canvas.MinBrushSize
		}
		if n > canvas.MaxBrushSize {
			n = canvas.MaxBrushSize
		}
		cfg.BrushSize = n
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
