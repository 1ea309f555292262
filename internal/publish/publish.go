// Package publish turns a task export into the snapshot payload the deck
// consumes: pending tasks only, earliest due first, published retained so a
// device that connects later still gets the latest list.
package publish

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoTasks is returned when the input holds no task list at all.
var ErrNoTasks = errors.New("publish: no task list in input")

// StatusTodo is the only status that reaches the device.
const StatusTodo = "todo"

// Due is the deadline of a task; Timestamp is epoch milliseconds as text.
type Due struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	IsAllDay  bool   `json:"is_all_day" yaml:"is_all_day"`
}

// Task is one record of a task-service export.
type Task struct {
	GUID        string `json:"guid" yaml:"guid"`
	Summary     string `json:"summary" yaml:"summary"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
	CompletedAt string `json:"completed_at" yaml:"completed_at"`
	Due         *Due   `json:"due,omitempty" yaml:"due,omitempty"`
}

// Item is one element of the published snapshot array.
type Item struct {
	TaskID       string `json:"taskId"`
	Summary      string `json:"summary"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	CompletedAt  string `json:"completedAt,omitempty"`
	DueTimestamp string `json:"dueTimestamp,omitempty"`
	DueIsAllDay  *bool  `json:"dueIsAllDay,omitempty"`
}

// dueKey orders tasks by due time; a missing or unparsable due sorts last.
func dueKey(t Task) int64 {
	if t.Due == nil || t.Due.Timestamp == "" {
		return math.MaxInt64
	}
	v, err := strconv.ParseInt(strings.TrimSpace(t.Due.Timestamp), 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return v
}

// Build keeps todo tasks, sorts them by due ascending (stable, missing due
// last) and maps them to snapshot items.
func Build(tasks []Task) []Item {
	todo := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == StatusTodo {
			todo = append(todo, t)
		}
	}
	slices.SortStableFunc(todo, func(a, b Task) int {
		ka, kb := dueKey(a), dueKey(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})

	items := make([]Item, len(todo))
	for i, t := range todo {
		items[i] = Item{
			TaskID:      t.GUID,
			Summary:     t.Summary,
			Description: t.Description,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
			CompletedAt: t.CompletedAt,
		}
		if t.Due != nil {
			items[i].DueTimestamp = t.Due.Timestamp
			allDay := t.Due.IsAllDay
			items[i].DueIsAllDay = &allDay
		}
	}
	return items
}

// Encode renders the snapshot. An empty list encodes as [] so the device clears.
func Encode(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

// ParseTasks reads an export. JSON or YAML is chosen by the file name's
// extension, falling back to sniffing. The document is either a task list or
// an object with an "items" list.
func ParseTasks(name string, data []byte) ([]Task, error) {
	if isJSON(name, data) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func isJSON(name string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{')
}

func parseJSON(data []byte) ([]Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNoTasks
	}
	if trimmed[0] == '[' {
		var tasks []Task
		if err := json.Unmarshal(trimmed, &tasks); err != nil {
			return nil, fmt.Errorf("publish: decode json: %w", err)
		}
		return tasks, nil
	}
	var wrap struct {
		Items *[]Task `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrap); err != nil {
		return nil, fmt.Errorf("publish: decode json: %w", err)
	}
	if wrap.Items == nil {
		return nil, ErrNoTasks
	}
	return *wrap.Items, nil
}

func parseYAML(data []byte) ([]Task, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("publish: decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrNoTasks
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var tasks []Task
		if err := root.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("publish: decode yaml: %w", err)
		}
		return tasks, nil
	case yaml.MappingNode:
		var wrap struct {
			Items *[]Task `yaml:"items"`
		}
		if err := root.Decode(&wrap); err != nil {
			return nil, fmt.Errorf("publish: decode yaml: %w", err)
		}
		if wrap.Items == nil {
			return nil, ErrNoTasks
		}
		return *wrap.Items, nil
	default:
		return nil, ErrNoTasks
	}
}
