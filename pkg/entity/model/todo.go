package model

import "strings"

// Priority is the urgency of a todo.
type Priority string

// Status is the progress state of a todo.
type Status string

// Category groups todos by area of life.
type Category string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

const (
	StatusToDo       Status = "TO DO"
	StatusInProgress Status = "IN PROGRESS"
	StatusDone       Status = "DONE"
)

const (
	CategoryWork     Category = "WORK"
	CategoryHome     Category = "HOME"
	CategoryLearning Category = "LEARNING"
)

// Priorities lists every canonical priority token.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Statuses lists every canonical status token.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// Categories lists every canonical category token.
var Categories = []Category{CategoryWork, CategoryHome, CategoryLearning}

// IsValid reports whether p is a canonical upper-case priority.
func (p Priority) IsValid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a canonical upper-case status.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValid reports whether c is a canonical upper-case category.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// MatchesEnumToken reports whether v is the canonical token or its
// all-lower-case spelling. Mixed case never matches.
func MatchesEnumToken(v string, canonical string) bool {
	return v == canonical || v == strings.ToLower(canonical)
}

// Todo is a single task record.
type Todo struct {
	ID       int64    `json:"id" db:"id"`
	Todo     string   `json:"todo" db:"todo"`
	Priority Priority `json:"priority" db:"priority"`
	Status   Status   `json:"status" db:"status"`
	Category Category `json:"category" db:"category"`
	DueDate  *string  `json:"dueDate" db:"due_date"`
}

// CreateTodoInput represents the payload for creating a todo.
// DueDate, when set, is already normalized to yyyy-MM-dd.
type CreateTodoInput struct {
	ID       int64
	Todo     string
	Priority Priority
	Status   Status
	Category Category
	DueDate  *string
}

// TodoField is an updatable column of the todo table.
type TodoField string

const (
	TodoFieldTodo     TodoField = "todo"
	TodoFieldPriority TodoField = "priority"
	TodoFieldStatus   TodoField = "status"
	TodoFieldCategory TodoField = "category"
	TodoFieldDueDate  TodoField = "due_date"
)

// TodoFieldFromProperty maps a JSON body property to its column.
func TodoFieldFromProperty(property string) (TodoField, bool) {
	switch property {
	case "todo":
		return TodoFieldTodo, true
	case "priority":
		return TodoFieldPriority, true
	case "status":
		return TodoFieldStatus, true
	case "category":
		return TodoFieldCategory, true
	case "dueDate":
		return TodoFieldDueDate, true
	}
	return "", false
}

// Label is the human readable column name used in update responses.
func (f TodoField) Label() string {
	if f == TodoFieldDueDate {
		return "Due Date"
	}
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// UpdateTodoInput changes a single column of one todo.
type UpdateTodoInput struct {
	ID    int64
	Field TodoField
	Value string
}

// TodoWhereInput holds the substring filters of a todo listing.
// Empty strings match everything.
type TodoWhereInput struct {
	SearchQ  string
	Priority string
	Status   string
	Category string
}
